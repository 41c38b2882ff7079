// Package actions implements one action per subcommand, composing tracker
// queries and mutations with executor calls.
package actions

import (
	"context"

	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/runtime"
)

// ensureRebasedOnParent checks that branch is fully rebased onto parent: a
// two-element base tuple, or a base commit the parent's history no longer
// contains, means the branch is stale or mid-rebase. Returns false after
// printing the corrective instruction; the calling command then exits
// cleanly without mutating state.
func ensureRebasedOnParent(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, branch, parent string) (bool, error) {
	bases, err := tracker.Bases(branch)
	if err != nil {
		return false, err
	}

	if len(bases) == 2 {
		rt.Splog.Warn("Please rebase this branch on top of its parent")
		return false, nil
	}

	contains, err := git.BranchContains(ctx, rt.Git, parent, bases[0])
	if err != nil {
		return false, err
	}
	if !contains {
		rt.Splog.Warn("Please rebase this branch on top of its parent")
		return false, nil
	}

	return true, nil
}
