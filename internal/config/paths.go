// Package config resolves where stax keeps its state inside the repository.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"stax.dev/stax/internal/git"
)

const (
	stateDirName   = "stax"
	branchFileName = "branches.csv"
)

// BranchFilePath returns the path of the branch file inside the repository's
// git directory. The containing directory is created on first use; the file
// itself is created lazily by the store's first save.
func BranchFilePath(ctx context.Context, r git.Runner) (string, error) {
	gitDir, err := git.GitDir(ctx, r)
	if err != nil {
		return "", err
	}

	stateDir := filepath.Join(gitDir, stateDirName)
	if info, err := os.Stat(stateDir); err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("%s exists and is not a directory", stateDir)
		}
	} else if err := os.MkdirAll(stateDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}

	return filepath.Join(stateDir, branchFileName), nil
}
