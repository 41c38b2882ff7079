package actions

import (
	"context"
	"fmt"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Move changes the parent of the current branch. When onto is empty the user
// picks the new parent from the tracked branches.
//
// No cycle check happens here or in the tracker: moving a branch onto one of
// its own descendants is not guarded against.
func Move(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, onto string) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	if onto == "" {
		var choices []string
		for _, name := range tracker.AllBranches() {
			if name != current {
				choices = append(choices, name)
			}
		}
		if len(choices) == 0 {
			return fmt.Errorf("no other tracked branches to move onto")
		}
		onto, err = promptBranchSelection("Select the new parent branch:", choices)
		if err != nil {
			return err
		}
	}

	if onto == current {
		return fmt.Errorf("cannot make %s its own parent", current)
	}

	tracker.SetParent(current, onto)

	rt.Splog.Info("Changed parent of %s to %s", current, onto)
	rt.Splog.Tip("Run `stax restack` to rebase %s onto %s", current, onto)
	return nil
}
