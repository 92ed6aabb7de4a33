package cmd

import (
	"fmt"

	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var flags credentialFlags
	var inline bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller, err := connectControllerWith(cmd, app, &flags, app.screenLogger())
			if err != nil {
				return err
			}
			defer controller.Close()

			if err := controller.Start(cmd.Context()); err != nil {
				return fmt.Errorf("start sampler: %w", err)
			}

			return runLiveDashboard(cmd.Context(), controller, dashboard.LiveOptions{
				Input:     cmd.InOrStdin(),
				Output:    cmd.OutOrStdout(),
				AltScreen: !inline,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&inline, "inline", false, "Render inline instead of on the alternate screen")

	return cmd
}
