package engine_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stax.dev/stax/internal/engine"
	staxerrors "stax.dev/stax/internal/errors"
)

func TestWithTracker(t *testing.T) {
	t.Run("mutations are persisted on success", func(t *testing.T) {
		store := newTestStore(t)

		err := store.WithTracker(func(tracker *engine.Tracker) error {
			return tracker.AddChild("main", "feature", "abc123")
		})
		require.NoError(t, err)

		loaded, err := store.Load()
		require.NoError(t, err)
		require.True(t, loaded.IsTracked("feature"))
	})

	t.Run("state is saved even when the callback fails", func(t *testing.T) {
		store := newTestStore(t)
		boom := errors.New("boom")

		err := store.WithTracker(func(tracker *engine.Tracker) error {
			if err := tracker.AddChild("main", "feature", "abc123"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		// Partial progress survives, mirroring an interrupted rebase whose
		// two-element base tuple must outlive the failed command.
		loaded, err := store.Load()
		require.NoError(t, err)
		require.True(t, loaded.IsTracked("feature"))
	})

	t.Run("load failure skips the callback", func(t *testing.T) {
		store := engine.NewStore(filepath.Join(t.TempDir(), "branches.csv"))
		require.NoError(t, os.WriteFile(store.Path(), []byte("bad,row\n"), 0644))

		called := false
		err := store.WithTracker(func(*engine.Tracker) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, staxerrors.ErrCorruptState)
		require.False(t, called)
	})

	t.Run("save failure is reported", func(t *testing.T) {
		// The parent directory is missing, so the load sees an empty tree
		// but the save cannot create its temporary file.
		store := engine.NewStore(filepath.Join(t.TempDir(), "missing", "branches.csv"))

		err := store.WithTracker(func(*engine.Tracker) error {
			return nil
		})
		require.Error(t, err)
	})

	t.Run("callback error wins over save error", func(t *testing.T) {
		store := engine.NewStore(filepath.Join(t.TempDir(), "missing", "branches.csv"))
		boom := errors.New("boom")

		err := store.WithTracker(func(*engine.Tracker) error {
			return boom
		})
		require.ErrorIs(t, err, boom)
	})
}
