package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newMoveCmd() *cobra.Command {
	var onto string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move the current branch onto a different parent",
		Long: `Move retargets the current branch onto a new parent in the tracked
tree. It only updates the relationship; run restack afterwards to rebase
the commits onto the new parent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Move(ctx, rt, tracker, onto)
			})
		},
	}

	cmd.Flags().StringVar(&onto, "onto", "", "branch to move the current branch onto (prompts when omitted)")

	return cmd
}
