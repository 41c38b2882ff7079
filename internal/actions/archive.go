package actions

import (
	"context"
	"fmt"
	"strings"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// ArchivedPrefix is prepended to a branch name when it is archived
const ArchivedPrefix = "archived/"

// Archive moves a branch under the archived/ namespace, in git and in the
// tracker, so it drops out of day-to-day branch listings. Undo reverses it.
func Archive(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, name string, undo bool) error {
	if name == "" {
		current, err := git.CurrentBranch(ctx, rt.Git)
		if err != nil {
			return err
		}
		name = current
	}

	if !tracker.IsTracked(name) {
		return fmt.Errorf("branch %s is not tracked", name)
	}

	var newName string
	if undo {
		if !strings.HasPrefix(name, ArchivedPrefix) {
			return fmt.Errorf("branch %s is not archived", name)
		}
		newName = strings.TrimPrefix(name, ArchivedPrefix)
	} else {
		if strings.HasPrefix(name, ArchivedPrefix) {
			return fmt.Errorf("branch %s is already archived", name)
		}
		newName = ArchivedPrefix + name
	}

	if err := git.RenameBranch(ctx, rt.Git, name, newName); err != nil {
		return err
	}

	if err := tracker.Rename(name, newName); err != nil {
		return err
	}

	if undo {
		rt.Splog.Info("Unarchived %s", newName)
	} else {
		rt.Splog.Info("Archived %s as %s", name, newName)
	}
	return nil
}
