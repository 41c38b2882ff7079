package engine

import (
	"fmt"
	"sort"
	"sync"

	staxerrors "stax.dev/stax/internal/errors"
)

// Tracker holds the forest of branch records: every non-root branch has
// exactly one parent, a parent has zero or more children, and every tracked
// branch carries a one-element base tuple in steady state or a two-element
// (base, pendingBase) tuple while a rebase is in flight.
//
// The tracker exclusively owns the forest in memory for the duration of one
// command invocation; the store owns the serialized form between invocations.
// Thread-safe: all methods are safe for concurrent use.
type Tracker struct {
	childToParent    map[string]string
	parentToChildren map[string][]string
	branchToBases    map[string][]string
	mu               sync.RWMutex
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		childToParent:    make(map[string]string),
		parentToChildren: make(map[string][]string),
		branchToBases:    make(map[string][]string),
	}
}

// Parent returns the parent branch name. Roots and untracked branches fail
// with ErrNoParent; callers that cannot rule those out check HasParent first.
func (t *Tracker) Parent(child string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	parent, ok := t.childToParent[child]
	if !ok {
		return "", staxerrors.NewNoParentError(child)
	}
	return parent, nil
}

// Children returns the child branch names in registration order. A branch
// with no children yields an empty slice, not an error.
func (t *Tracker) Children(parent string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	children := t.parentToChildren[parent]
	out := make([]string, len(children))
	copy(out, children)
	return out
}

// Bases returns the 1- or 2-element base tuple for a branch
func (t *Tracker) Bases(branch string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	bases, ok := t.branchToBases[branch]
	if !ok {
		return nil, staxerrors.NewUnknownBranchError(branch)
	}
	out := make([]string, len(bases))
	copy(out, bases)
	return out, nil
}

// HasParent reports whether a branch has a parent. Never fails.
func (t *Tracker) HasParent(branch string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.childToParent[branch]
	return ok
}

// AllParents returns the names of branches that currently have at least one
// child, sorted for deterministic iteration.
func (t *Tracker) AllParents() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var parents []string
	for parent, children := range t.parentToChildren {
		if len(children) > 0 {
			parents = append(parents, parent)
		}
	}
	sort.Strings(parents)
	return parents
}

// AllBranches returns every name the tracker knows about, as a child or as a
// parent, sorted.
func (t *Tracker) AllBranches() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for child, parent := range t.childToParent {
		if !seen[child] {
			seen[child] = true
			names = append(names, child)
		}
		if !seen[parent] {
			seen[parent] = true
			names = append(names, parent)
		}
	}
	sort.Strings(names)
	return names
}

// IsTracked reports whether a branch has a base record
func (t *Tracker) IsTracked(branch string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.branchToBases[branch]
	return ok
}

// AddChild registers newChild with a single base commit and links it under
// parent, updating both indexes.
func (t *Tracker) AddChild(parent, newChild, base string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.branchToBases[newChild]; ok {
		return fmt.Errorf("branch %s is already tracked", newChild)
	}
	if _, ok := t.childToParent[newChild]; ok {
		return fmt.Errorf("branch %s is already tracked", newChild)
	}

	t.childToParent[newChild] = parent
	t.parentToChildren[parent] = append(t.parentToChildren[parent], newChild)
	t.branchToBases[newChild] = []string{base}
	return nil
}

// SetParent links child under newParent, unlinking it from its previous
// parent first if it had one. Bases are left untouched.
//
// The tracker performs no cycle check: callers are responsible for not
// reparenting a branch under one of its own descendants.
func (t *Tracker) SetParent(child, newParent string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if oldParent, ok := t.childToParent[child]; ok {
		t.parentToChildren[oldParent] = remove(t.parentToChildren[oldParent], child)
	}
	t.childToParent[child] = newParent
	t.parentToChildren[newParent] = append(t.parentToChildren[newParent], child)
}

// CollapseAndRemove folds an intermediate branch out of the tree: its
// children are reparented onto its own parent and its records are removed
// from all three indexes. Collapsing a root fails with ErrNoParent.
func (t *Tracker) CollapseAndRemove(oldParent string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	newParent, ok := t.childToParent[oldParent]
	if !ok {
		return staxerrors.NewNoParentError(oldParent)
	}
	delete(t.childToParent, oldParent)
	t.parentToChildren[newParent] = remove(t.parentToChildren[newParent], oldParent)

	delete(t.branchToBases, oldParent)

	if children, ok := t.parentToChildren[oldParent]; ok {
		delete(t.parentToChildren, oldParent)
		t.parentToChildren[newParent] = append(t.parentToChildren[newParent], children...)
		for _, child := range children {
			t.childToParent[child] = newParent
		}
	}
	return nil
}

// Rename moves a branch's records to a new name, updating the parent's
// children list and every child's parent reference. The old name no longer
// resolves afterward.
func (t *Tracker) Rename(oldName, newName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	bases, ok := t.branchToBases[oldName]
	if !ok {
		return staxerrors.NewUnknownBranchError(oldName)
	}
	delete(t.branchToBases, oldName)
	t.branchToBases[newName] = bases

	if parent, ok := t.childToParent[oldName]; ok {
		delete(t.childToParent, oldName)
		t.childToParent[newName] = parent
		t.parentToChildren[parent] = remove(t.parentToChildren[parent], oldName)
		t.parentToChildren[parent] = append(t.parentToChildren[parent], newName)
	}

	if children, ok := t.parentToChildren[oldName]; ok {
		delete(t.parentToChildren, oldName)
		t.parentToChildren[newName] = children
		for _, child := range children {
			t.childToParent[child] = newName
		}
	}
	return nil
}

// RemoveLeaf deletes a branch that has no children, unlinking it from its
// parent and dropping its base record.
func (t *Tracker) RemoveLeaf(leaf string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if children := t.parentToChildren[leaf]; len(children) > 0 {
		return fmt.Errorf("expected branch %s to be a leaf, has %d child(ren)", leaf, len(children))
	}
	delete(t.parentToChildren, leaf)

	if parent, ok := t.childToParent[leaf]; ok {
		delete(t.childToParent, leaf)
		t.parentToChildren[parent] = remove(t.parentToChildren[parent], leaf)
	}
	delete(t.branchToBases, leaf)
	return nil
}

// StartRebase records the intended post-rebase base, transitioning the base
// tuple from one element to two. Fails with ErrRebaseInProgress if a rebase
// is already recorded.
func (t *Tracker) StartRebase(branch, newBase string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	bases, ok := t.branchToBases[branch]
	if !ok {
		return staxerrors.NewUnknownBranchError(branch)
	}
	if len(bases) != 1 {
		return fmt.Errorf("branch %s: %w", branch, staxerrors.ErrRebaseInProgress)
	}
	t.branchToBases[branch] = append(bases, newBase)
	return nil
}

// FinishRebase collapses the base tuple back to a single element. Fails with
// ErrNoRebaseInProgress if no rebase is recorded.
func (t *Tracker) FinishRebase(branch, newBase string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	bases, ok := t.branchToBases[branch]
	if !ok {
		return staxerrors.NewUnknownBranchError(branch)
	}
	if len(bases) != 2 {
		return fmt.Errorf("branch %s: %w", branch, staxerrors.ErrNoRebaseInProgress)
	}
	t.branchToBases[branch] = []string{newBase}
	return nil
}

// remove returns the slice with the first occurrence of value removed
func remove(slice []string, value string) []string {
	for i, v := range slice {
		if v == value {
			return append(slice[:i:i], slice[i+1:]...)
		}
	}
	return slice
}
