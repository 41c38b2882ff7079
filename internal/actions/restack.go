package actions

import (
	"context"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Restack rebases the current branch onto its parent's tip using the
// two-phase base record: the intended base is written before the external
// rebase runs, so an interrupted or conflicted rebase leaves a two-element
// tuple behind and a later restack resumes from it.
func Restack(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	parent, err := tracker.Parent(current)
	if err != nil {
		return err
	}

	bases, err := tracker.Bases(current)
	if err != nil {
		return err
	}

	var oldBase, newBase string
	if len(bases) == 2 {
		oldBase, newBase = bases[0], bases[1]
		rt.Splog.Info("Resuming rebase of %s", current)
	} else {
		oldBase = bases[0]
		newBase, err = git.HashFor(ctx, rt.Git, parent)
		if err != nil {
			return err
		}
		if newBase == oldBase {
			rt.Splog.Info("%s is already rebased on %s", current, parent)
			return nil
		}
		if err := tracker.StartRebase(current, newBase); err != nil {
			return err
		}
	}

	if err := git.RebaseOnto(ctx, rt.Git, newBase, oldBase, current); err != nil {
		// The two-element tuple stays recorded; the session persists it
		// so the next restack resumes.
		rt.Splog.Error("Rebase of %s stopped; resolve the conflicts and run `stax restack` to resume", current)
		return err
	}

	if err := tracker.FinishRebase(current, newBase); err != nil {
		return err
	}

	rt.Splog.Info("Rebased %s onto %s", current, parent)
	return nil
}
