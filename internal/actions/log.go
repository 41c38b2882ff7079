package actions

import (
	"context"
	"errors"
	"strings"

	"stax.dev/stax/internal/engine"
	staxerrors "stax.dev/stax/internal/errors"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/output"
	"stax.dev/stax/internal/runtime"
)

// Log prints the whole tracked forest, one tree per root branch
func Log(ctx context.Context, rt *runtime.Context, tracker *engine.Tracker, noStyle bool) error {
	current, err := git.CurrentBranch(ctx, rt.Git)
	if err != nil {
		if !errors.Is(err, staxerrors.ErrNotOnBranch) {
			return err
		}
		current = ""
	}

	var roots []string
	for _, parent := range tracker.AllParents() {
		if !tracker.HasParent(parent) {
			roots = append(roots, parent)
		}
	}
	if len(roots) == 0 {
		rt.Splog.Info("No tracked branches. Run `stax create` to start a stack.")
		return nil
	}

	renderer := output.NewTreeRenderer(current, tracker.Children, func(branchName string) string {
		bases, err := tracker.Bases(branchName)
		if err == nil && len(bases) == 2 {
			return "(rebasing)"
		}
		return ""
	})

	lines := renderer.RenderForest(roots, output.TreeRenderOptions{NoStyle: noStyle})
	rt.Splog.Page(strings.Join(lines, "\n"))
	rt.Splog.Newline()
	return nil
}
