package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newRestackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restack",
		Short: "Rebase the current branch onto the tip of its parent",
		Long: `Restack rebases the current branch onto its parent's current tip. If a
previous restack was interrupted by conflicts, running it again resumes
from the recorded rebase state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Restack(ctx, rt, tracker)
			})
		},
	}
}
