package git

import (
	"context"
	"strings"

	staxerrors "stax.dev/stax/internal/errors"
)

// Git runs a git command through the runner
func Git(ctx context.Context, r Runner, command string) (string, error) {
	return r.Run(ctx, "git", command)
}

// Arc runs an arc (code review tool) command through the runner
func Arc(ctx context.Context, r Runner, command string) (string, error) {
	return r.Run(ctx, "arc", command)
}

// CurrentBranch returns the name of the checked-out branch
func CurrentBranch(ctx context.Context, r Runner) (string, error) {
	out, err := Git(ctx, r, "rev-parse --abbrev-ref HEAD")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "HEAD" {
		return "", staxerrors.ErrNotOnBranch
	}
	return name, nil
}

// GitDir returns the path of the repository's git directory
func GitDir(ctx context.Context, r Runner) (string, error) {
	out, err := Git(ctx, r, "rev-parse --git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HashFor resolves a revision to its commit hash
func HashFor(ctx context.Context, r Runner, rev string) (string, error) {
	out, err := Git(ctx, r, "rev-parse --verify "+rev)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BranchContains reports whether a branch's history contains a commit
func BranchContains(ctx context.Context, r Runner, branch, commit string) (bool, error) {
	out, err := Git(ctx, r, "branch --contains "+commit)
	if err != nil {
		return false, err
	}
	// Each line of `git branch` output is "  name" or "* name".
	return strings.Contains(out, " "+branch+"\n"), nil
}

// CreateAndCheckoutBranch creates a new branch at HEAD and checks it out
func CreateAndCheckoutBranch(ctx context.Context, r Runner, name string) error {
	_, err := Git(ctx, r, "checkout -b "+name)
	return err
}

// Checkout checks out an existing branch
func Checkout(ctx context.Context, r Runner, name string) error {
	_, err := Git(ctx, r, "checkout "+name)
	return err
}

// RenameBranch renames a branch
func RenameBranch(ctx context.Context, r Runner, oldName, newName string) error {
	_, err := Git(ctx, r, "branch -m "+oldName+" "+newName)
	return err
}

// DeleteBranchForce force-deletes a branch
func DeleteBranchForce(ctx context.Context, r Runner, name string) error {
	_, err := Git(ctx, r, "branch -D "+name)
	return err
}

// RebaseOnto rebases the commits of branch after oldBase onto newBase
func RebaseOnto(ctx context.Context, r Runner, newBase, oldBase, branch string) error {
	_, err := Git(ctx, r, "rebase --onto "+newBase+" "+oldBase+" "+branch)
	return err
}
