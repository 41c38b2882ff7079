package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newArchiveCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "archive [branch]",
		Short: "Move a branch under the archived/ namespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Archive(ctx, rt, tracker, name, undo)
			})
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "restore an archived branch to its original name")

	return cmd
}
