package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type credentialFlags struct {
	token string
	guild string
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.token, "token", "", "Bot token (default: saved settings)")
	cmd.Flags().StringVar(&f.guild, "guild", "", "Server ID (default: saved settings)")
}

// resolve overlays explicit flags on the saved credentials.
func (f *credentialFlags) resolve(cmd *cobra.Command, app *app) (domain.Credentials, error) {
	creds, err := app.settings.Load(cmd.Context())
	if err != nil {
		return domain.Credentials{}, err
	}

	if token := strings.TrimSpace(f.token); token != "" {
		creds.BotToken = token
	}
	if guild := strings.TrimSpace(f.guild); guild != "" {
		creds.GuildID = guild
	}

	return creds, nil
}

// connectController opens a session logging to app.logger. The caller owns
// Close.
func connectController(cmd *cobra.Command, app *app, flags *credentialFlags) (*application.Controller, error) {
	return connectControllerWith(cmd, app, flags, app.logger)
}

func connectControllerWith(cmd *cobra.Command, app *app, flags *credentialFlags, logger *zap.Logger) (*application.Controller, error) {
	creds, err := flags.resolve(cmd, app)
	if err != nil {
		return nil, err
	}

	controller := app.newController(logger)
	if err := controller.Connect(cmd.Context(), creds); err != nil {
		controller.Close()
		return nil, err
	}

	return controller, nil
}

func writeSnapshot(cmd *cobra.Command, app *app, snapshot application.Snapshot, opts dashboard.RenderOptions) error {
	rendered, err := app.renderer(snapshot, opts)
	if err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeSnapshotJSON(cmd *cobra.Command, snapshot application.Snapshot) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}
