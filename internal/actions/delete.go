package actions

import (
	"context"
	"fmt"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Delete removes a leaf branch from git and from the tracker. Branches with
// children must be collapsed or restacked away first.
func Delete(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, name string, force bool) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	if name == current {
		return fmt.Errorf("cannot delete the checked-out branch; check out its parent first")
	}
	if !tracker.IsTracked(name) {
		return fmt.Errorf("branch %s is not tracked", name)
	}
	if children := tracker.Children(name); len(children) > 0 {
		return fmt.Errorf("expected branch %s to be a leaf, has %d child(ren)", name, len(children))
	}

	if !force {
		confirmed, err := promptConfirm(fmt.Sprintf("Delete branch %s?", name), false)
		if err != nil {
			return err
		}
		if !confirmed {
			rt.Splog.Info("Aborted")
			return nil
		}
	}

	if err := git.DeleteBranchForce(ctx, rt.Git, name); err != nil {
		return err
	}

	if err := tracker.RemoveLeaf(name); err != nil {
		return err
	}

	rt.Splog.Info("Deleted branch %s", name)
	return nil
}
