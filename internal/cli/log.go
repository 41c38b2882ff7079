package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/actions"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

func newLogCmd() *cobra.Command {
	var noStyle bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the tracked branch tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
				return actions.Log(ctx, rt, tracker, noStyle)
			})
		},
	}

	cmd.Flags().BoolVar(&noStyle, "no-style", false, "disable colors and decorations")

	return cmd
}
