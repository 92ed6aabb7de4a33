package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nx",
		Short:         "NX Sentinel: guild telemetry and operations dashboard",
		Long:          "nx connects to a Discord guild with a bot token, samples simulated member activity, asks an AI content provider for threat reports, and drives the armed operation protocol from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSettingsCmd(app),
		newConnectCmd(app),
		newScanCmd(app),
		newNukeCmd(app),
		newSimulateCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
