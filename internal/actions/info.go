package actions

import (
	"context"
	"strings"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Info prints the tracked state of the current branch: parent, bases, and
// children.
func Info(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	rt.Splog.Info("Branch: %s", current)

	if tracker.HasParent(current) {
		parent, err := tracker.Parent(current)
		if err != nil {
			return err
		}
		rt.Splog.Info("Parent: %s", parent)
	} else {
		rt.Splog.Info("Parent: (none)")
	}

	if tracker.IsTracked(current) {
		bases, err := tracker.Bases(current)
		if err != nil {
			return err
		}
		rt.Splog.Info("Base: %s", bases[0])
		if len(bases) == 2 {
			rt.Splog.Info("Pending rebase base: %s", bases[1])
		}
	}

	if children := tracker.Children(current); len(children) > 0 {
		rt.Splog.Info("Children: %s", strings.Join(children, ", "))
	} else {
		rt.Splog.Info("Children: (none)")
	}

	return nil
}
