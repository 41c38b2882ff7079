package actions

import (
	"context"
	"fmt"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Rename renames the current branch in git and moves its tracker records to
// the new name. When newName is empty the user is prompted for one.
func Rename(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, newName string) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	if newName == "" {
		newName, err = promptTextInput("New branch name:", current)
		if err != nil {
			return err
		}
		if newName == "" {
			return fmt.Errorf("no branch name given")
		}
	}

	if tracker.IsTracked(newName) {
		return fmt.Errorf("branch %s is already tracked", newName)
	}

	if err := git.RenameBranch(ctx, rt.Git, current, newName); err != nil {
		return err
	}

	if err := tracker.Rename(current, newName); err != nil {
		return err
	}

	rt.Splog.Info("Renamed %s to %s", current, newName)
	return nil
}
