package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the saved bot token and server ID",
	}

	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show saved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if creds.GuildID == "" {
				_, err := fmt.Fprintln(out, "No settings saved.")
				return err
			}

			_, err = fmt.Fprintf(out, "guild: %s\ntoken: %s\n", creds.GuildID, maskToken(creds.BotToken))
			return err
		},
	}
}

func newSettingsSetCmd(app *app) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save a bot token and server ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.settings.Save(cmd.Context(), creds); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved settings for guild %s\n", strings.TrimSpace(creds.GuildID))
			return err
		},
	}

	cmd.Flags().StringVar(&creds.BotToken, "token", "", "Bot token")
	cmd.Flags().StringVar(&creds.GuildID, "guild", "", "Server ID")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}

func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}

	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}

	return strings.Repeat("*", 8) + token[len(token)-visible:]
}
