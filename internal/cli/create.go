package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <branch>",
		Short: "Create a new branch stacked on top of the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Create(ctx, rt, tracker, args[0])
			})
		},
	}
}
