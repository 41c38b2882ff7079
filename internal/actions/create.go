package actions

import (
	"context"
	"fmt"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// Create makes a new branch at HEAD, checks it out, and registers it as a
// child of the branch it was created from.
func Create(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, name string) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		return err
	}

	if tracker.IsTracked(name) {
		return fmt.Errorf("branch %s is already tracked", name)
	}

	base, err := git.HashFor(ctx, rt.Git, "HEAD")
	if err != nil {
		return err
	}

	if err := git.CreateAndCheckoutBranch(ctx, rt.Git, name); err != nil {
		return err
	}

	if err := tracker.AddChild(current, name, base); err != nil {
		return err
	}

	rt.Splog.Info("Created branch %s on top of %s", name, current)
	return nil
}
