package cmd

import (
	"github.com/bnema/nx-sentinel/internal/adapters/render/dashboard"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	var flags credentialFlags
	var asJSON bool
	var rows int

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to a guild and show its members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller, err := connectController(cmd, app, &flags)
			if err != nil {
				return err
			}
			defer controller.Close()

			snapshot := controller.Snapshot()
			if asJSON {
				return writeSnapshotJSON(cmd, snapshot)
			}

			return writeSnapshot(cmd, app, snapshot, dashboard.RenderOptions{
				MemberRows: rows,
				Sections:   []dashboard.Section{dashboard.SectionServer, dashboard.SectionMembers, dashboard.SectionConsole},
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().IntVar(&rows, "rows", 0, "Member rows to show (-1 for all)")

	return cmd
}
