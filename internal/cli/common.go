// Package cli wires the cobra subcommands to the actions. Commands are thin:
// they parse flags, open the scoped session, and delegate.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/runtime"
)

// run builds the runtime context and executes fn inside the scoped session:
// the tracker is loaded at entry and saved back on every exit path.
func run(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error) error {
	rt, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Splog.Close()
	rt.Splog.Debug("using branch file %s", rt.Store.Path())

	return rt.Store.WithTracker(func(tracker *engine.Tracker) error {
		return fn(cmd.Context(), rt, tracker)
	})
}
