package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [new-name]",
		Short: "Rename the current branch in git and in the tracked tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newName := ""
			if len(args) == 1 {
				newName = args[0]
			}
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Rename(ctx, rt, tracker, newName)
			})
		},
	}
}
