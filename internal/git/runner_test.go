package git_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	staxerrors "stax.dev/stax/internal/errors"
	"stax.dev/stax/internal/git"
)

func TestCommandRunner(t *testing.T) {
	t.Run("captures standard output", func(t *testing.T) {
		runner := git.NewCommandRunner()

		out, err := runner.Run(context.Background(), "echo", "hello world")
		require.NoError(t, err)
		require.Equal(t, "hello world\n", out)
	})

	t.Run("splits the command on spaces", func(t *testing.T) {
		runner := git.NewCommandRunner()

		out, err := runner.Run(context.Background(), "echo", "a b c")
		require.NoError(t, err)
		require.Equal(t, "a b c\n", out)
	})

	t.Run("non-zero exit becomes a CommandError", func(t *testing.T) {
		runner := git.NewCommandRunner()

		_, err := runner.Run(context.Background(), "false", "anything")
		require.Error(t, err)

		var cmdErr *staxerrors.CommandError
		require.True(t, stderrors.As(err, &cmdErr))
		require.Equal(t, "false", cmdErr.Program)
		require.Equal(t, "anything", cmdErr.Command)
		require.False(t, cmdErr.Interrupted)
		require.Contains(t, err.Error(), "!!! `false anything`")
	})

	t.Run("missing program becomes a CommandError", func(t *testing.T) {
		runner := git.NewCommandRunner()

		_, err := runner.Run(context.Background(), "definitely-not-a-real-program", "x")

		var cmdErr *staxerrors.CommandError
		require.True(t, stderrors.As(err, &cmdErr))
		require.False(t, cmdErr.Interrupted)
	})

	t.Run("respects the context deadline", func(t *testing.T) {
		runner := git.NewCommandRunner()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := runner.Run(ctx, "sleep", "10")
		require.Error(t, err)
	})

	t.Run("runs in the configured working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644))
		runner := git.NewCommandRunnerInDir(dir)

		out, err := runner.Run(context.Background(), "ls", ".")
		require.NoError(t, err)
		require.Contains(t, out, "marker.txt")
	})

	t.Run("nil context uses the default timeout", func(t *testing.T) {
		runner := git.NewCommandRunner()

		out, err := runner.Run(nil, "echo", "ok")
		require.NoError(t, err)
		require.Equal(t, "ok\n", out)
	})
}
