package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"stax.dev/stax/internal/errors"
)

func TestSentinelMatching(t *testing.T) {
	t.Run("unknown branch", func(t *testing.T) {
		err := errors.NewUnknownBranchError("feature")
		require.ErrorIs(t, err, errors.ErrUnknownBranch)
		require.Contains(t, err.Error(), "feature")

		var typed *errors.UnknownBranchError
		require.True(t, stderrors.As(err, &typed))
		require.Equal(t, "feature", typed.BranchName)
	})

	t.Run("no parent", func(t *testing.T) {
		err := errors.NewNoParentError("main")
		require.ErrorIs(t, err, errors.ErrNoParent)
		require.Contains(t, err.Error(), "main")
	})

	t.Run("corrupt state", func(t *testing.T) {
		err := errors.NewCorruptStateError("feature", "duplicate entry")
		require.ErrorIs(t, err, errors.ErrCorruptState)
		require.Contains(t, err.Error(), "duplicate entry")
		require.Contains(t, err.Error(), "feature")

		rowless := errors.NewCorruptStateError("", "wrong number of fields")
		require.ErrorIs(t, rowless, errors.ErrCorruptState)
		require.NotContains(t, rowless.Error(), "(branch")
	})

	t.Run("sentinels do not match each other", func(t *testing.T) {
		require.NotErrorIs(t, errors.NewUnknownBranchError("x"), errors.ErrNoParent)
		require.NotErrorIs(t, errors.NewNoParentError("x"), errors.ErrUnknownBranch)
	})
}

func TestCommandError(t *testing.T) {
	t.Run("failure banner names the program and command", func(t *testing.T) {
		err := errors.NewCommandError("git", "rebase --onto a b c", false, stderrors.New("exit status 1"))

		msg := err.Error()
		require.Contains(t, msg, "!!! Failed to run/finish git command:")
		require.Contains(t, msg, "!!! `git rebase --onto a b c`")
	})

	t.Run("interrupt message", func(t *testing.T) {
		err := errors.NewCommandError("arc", "diff main", true, stderrors.New("signal: interrupt"))

		require.Contains(t, err.Error(), "User aborted command: `arc diff main`")
	})

	t.Run("unwraps the underlying error", func(t *testing.T) {
		cause := stderrors.New("exit status 128")
		err := errors.NewCommandError("git", "status", false, cause)

		require.ErrorIs(t, err, cause)
	})
}
