// Package errors provides sentinel errors and custom error types for the stax application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrUnknownBranch indicates that the tracker has no record for a branch
	ErrUnknownBranch = errors.New("unknown branch")

	// ErrNoParent indicates that a root branch's parent was requested
	ErrNoParent = errors.New("branch has no parent")

	// ErrRebaseInProgress indicates that a rebase has already been started for a branch
	ErrRebaseInProgress = errors.New("rebase already in progress")

	// ErrNoRebaseInProgress indicates that there is no rebase to finish for a branch
	ErrNoRebaseInProgress = errors.New("no rebase in progress")

	// ErrCorruptState indicates that the on-disk branch file is invalid
	ErrCorruptState = errors.New("corrupt branch file")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")
)

// UnknownBranchError represents an error when the tracker has no record for a branch
type UnknownBranchError struct {
	BranchName string
}

func (e *UnknownBranchError) Error() string {
	return fmt.Sprintf("branch %s is not tracked", e.BranchName)
}

// Is returns true if the target error is ErrUnknownBranch
func (e *UnknownBranchError) Is(target error) bool {
	return target == ErrUnknownBranch
}

// NewUnknownBranchError creates a new UnknownBranchError
func NewUnknownBranchError(branchName string) *UnknownBranchError {
	return &UnknownBranchError{BranchName: branchName}
}

// NoParentError represents an error when a root branch's parent was requested
type NoParentError struct {
	BranchName string
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("branch %s has no parent", e.BranchName)
}

// Is returns true if the target error is ErrNoParent
func (e *NoParentError) Is(target error) bool {
	return target == ErrNoParent
}

// NewNoParentError creates a new NoParentError
func NewNoParentError(branchName string) *NoParentError {
	return &NoParentError{BranchName: branchName}
}

// CorruptStateError represents an invalid row found while loading the branch file
type CorruptStateError struct {
	BranchName string
	Reason     string
}

func (e *CorruptStateError) Error() string {
	if e.BranchName != "" {
		return fmt.Sprintf("corrupt branch file: %s (branch %s)", e.Reason, e.BranchName)
	}
	return fmt.Sprintf("corrupt branch file: %s", e.Reason)
}

// Is returns true if the target error is ErrCorruptState
func (e *CorruptStateError) Is(target error) bool {
	return target == ErrCorruptState
}

// NewCorruptStateError creates a new CorruptStateError
func NewCorruptStateError(branchName string, reason string) *CorruptStateError {
	return &CorruptStateError{BranchName: branchName, Reason: reason}
}

// CommandError represents a failed or interrupted external command invocation
type CommandError struct {
	Program     string
	Command     string
	Interrupted bool
	Err         error
}

func (e *CommandError) Error() string {
	if e.Interrupted {
		return fmt.Sprintf("\nUser aborted command: `%s %s`\n", e.Program, e.Command)
	}
	return fmt.Sprintf(
		"\n!!!!!!!!\n!!! Failed to run/finish %s command:\n!!! `%s %s`\n!!!!!!!!\n",
		e.Program, e.Program, e.Command)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(program, command string, interrupted bool, err error) *CommandError {
	return &CommandError{
		Program:     program,
		Command:     command,
		Interrupted: interrupted,
		Err:         err,
	}
}
