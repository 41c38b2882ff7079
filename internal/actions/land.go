package actions

import (
	"context"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Land lands the current branch onto its parent via the external review
// tool, then folds the branch out of the tracked tree: its children are
// reparented onto the landed-into parent. Refused while the branch is stale
// or mid-rebase.
//
// The parent is checked out first: the review tool deletes the landed branch,
// so HEAD must not be left on it.
func Land(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
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

	if err := git.Checkout(ctx, rt.Git, parent); err != nil {
		return err
	}

	out, err := git.Arc(ctx, rt.Git, "land --onto "+parent+" "+current)
	if err != nil {
		return err
	}
	rt.Splog.Page(out)

	if err := tracker.CollapseAndRemove(current); err != nil {
		return err
	}

	rt.Splog.Info("Landed %s onto %s", current, parent)
	return nil
}
