package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Send the current branch out for review against its parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Diff(ctx, rt, tracker)
			})
		},
	}
}
