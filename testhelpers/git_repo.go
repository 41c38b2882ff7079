// Package testhelpers builds throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRepo is a real on-disk git repository rooted at Dir. It starts with a
// single commit on main.
type GitRepo struct {
	Dir  string
	repo *gogit.Repository
}

// NewGitRepo initializes a repository in dir with one commit on main.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("init repo: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, err
	}
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	if err := repo.SetConfig(cfg); err != nil {
		return nil, err
	}

	r := &GitRepo{Dir: dir, repo: repo}
	if _, err := r.Commit("initial commit"); err != nil {
		return nil, err
	}
	return r, nil
}

// Commit writes a file unique to the message and commits it, returning the
// new commit hash.
func (r *GitRepo) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d.txt", time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(message+"\n"), 0644); err != nil {
		return "", err
	}
	if _, err := wt.Add(name); err != nil {
		return "", err
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// CreateAndCheckoutBranch creates a branch at HEAD and checks it out.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
}

// Checkout switches to an existing branch.
func (r *GitRepo) Checkout(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	return wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
	})
}

// Head returns the current HEAD commit hash.
func (r *GitRepo) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *GitRepo) CurrentBranch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return ref.Name().Short(), nil
}

// GitDirPath returns the repository's .git directory.
func (r *GitRepo) GitDirPath() string {
	return filepath.Join(r.Dir, ".git")
}
