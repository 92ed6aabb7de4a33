package cmd

import (
	"context"

	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newScanCmd(app *app) *cobra.Command {
	var flags credentialFlags

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Ask the content provider for a threat report on recent members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller, err := connectController(cmd, app, &flags)
			if err != nil {
				return err
			}
			defer controller.Close()

			scan := func(ctx context.Context, _ func(taskProgress)) error {
				return controller.ThreatScan(ctx)
			}
			if err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Analyzing member patterns...", scan); err != nil {
				return err
			}

			return writeSnapshot(cmd, app, controller.Snapshot(), dashboard.RenderOptions{
				Sections: []dashboard.Section{dashboard.SectionServer, dashboard.SectionThreats},
			})
		},
	}

	flags.register(cmd)

	return cmd
}
