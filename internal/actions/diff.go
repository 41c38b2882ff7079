package actions

import (
	"context"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Diff sends the current branch out for review against its parent via the
// external review tool. Refused while the branch is stale or mid-rebase.
func Diff(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	parent, err := tracker.Parent(current)
	if err != nil {
		return err
	}

	ok, err := ensureRebasedOnParent(ctx, rt, tracker, current, parent)
	if err != nil || !ok {
		return err
	}

	out, err := git.Arc(ctx, rt.Git, "diff "+parent)
	if err != nil {
		return err
	}
	rt.Splog.Page(out)
	return nil
}
