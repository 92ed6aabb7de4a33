package cmd

import (
	"errors"

	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *app) *cobra.Command {
	var flags credentialFlags
	var ticks int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run telemetry sampler ticks immediately and show the live feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ticks < 0 {
				return errors.New("--ticks must not be negative")
			}

			controller, err := connectController(cmd, app, &flags)
			if err != nil {
				return err
			}
			defer controller.Close()

			for range ticks {
				controller.Sampler.Tick()
			}

			return writeSnapshot(cmd, app, controller.Snapshot(), dashboard.RenderOptions{
				Sections: []dashboard.Section{dashboard.SectionServer, dashboard.SectionFeed},
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&ticks, "ticks", 5, "Number of sampler ticks to run")

	return cmd
}
