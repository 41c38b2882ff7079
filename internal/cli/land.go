package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newLandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "land",
		Short: "Land the current branch onto its parent",
		Long: `Land submits the current branch to the review tool to be landed onto its
parent, then removes the branch from the tracked tree. Children of the
landed branch are reparented onto the branch it landed into.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Land(ctx, rt, tracker)
			})
		},
	}
}
