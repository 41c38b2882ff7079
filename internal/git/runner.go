// Package git provides the executor for external commands (git, arc) and
// query helpers built on top of it.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	staxerrors "stax.dev/stax/internal/errors"
)

// DefaultCommandTimeout is the default timeout for external commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner handles execution of external commands. The command string is split
// on single spaces into an argument list; captured standard output is
// returned untrimmed. A non-zero exit or an interrupt is reported as a
// *errors.CommandError.
type Runner interface {
	Run(ctx context.Context, program string, command string) (string, error)
}

// CommandRunner is the standard Runner implementation backed by os/exec
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// NewCommandRunnerInDir creates a new CommandRunner that runs commands in a
// specific directory
func NewCommandRunnerInDir(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

// Run executes program with the given space-separated command string and
// returns its captured standard output.
func (r *CommandRunner) Run(ctx context.Context, program string, command string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	args := strings.Split(command, " ")
	cmd := exec.CommandContext(ctx, program, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Ctrl-C belongs to the child for the duration of the call: the child
	// dies with SIGINT and the failure surfaces as an interrupted
	// CommandError, so the scoped session still persists on the way out.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)

	if err := cmd.Run(); err != nil {
		return "", staxerrors.NewCommandError(program, command, wasInterrupted(err), err)
	}
	return stdout.String(), nil
}

// wasInterrupted reports whether the command died from the user's Ctrl-C
func wasInterrupted(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled() && ws.Signal() == syscall.SIGINT
}
