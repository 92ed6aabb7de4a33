package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/nx-sentinel/internal/application"
	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/spf13/cobra"
)

var errNotArmedFlag = errors.New("refusing to run the operation protocol without --arm")

func newNukeCmd(app *app) *cobra.Command {
	var flags credentialFlags
	var arm bool

	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Arm and execute the narrated operation protocol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !arm {
				return errNotArmedFlag
			}

			controller, err := connectController(cmd, app, &flags)
			if err != nil {
				return err
			}
			defer controller.Close()

			if _, err := controller.ToggleArm(); err != nil {
				return fmt.Errorf("arm operation: %w", err)
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, domain.BootLine); err != nil {
				return err
			}

			execute := func(ctx context.Context, report func(taskProgress)) error {
				return controller.Execute(ctx, func(update application.StepUpdate) {
					_, _ = fmt.Fprintf(out, "[%3d%%] %s\n", update.Progress, update.Line)
					report(stepProgress(update))
				})
			}
			if err := runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Running protocol", execute); err != nil {
				return fmt.Errorf("execute operation: %w", err)
			}

			op := controller.Snapshot().Operation
			_, err = fmt.Fprintf(out, "protocol %s, progress %d%%\n", op.Phase, op.Progress)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&arm, "arm", false, "Confirm the operation may execute")

	return cmd
}
