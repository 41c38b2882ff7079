package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stax.dev/stax/internal/engine"
	staxerrors "stax.dev/stax/internal/errors"
)

func newTestStore(t *testing.T) *engine.Store {
	t.Helper()
	return engine.NewStore(filepath.Join(t.TempDir(), "branches.csv"))
}

func TestStoreLoad(t *testing.T) {
	t.Run("missing file loads as empty tracker", func(t *testing.T) {
		store := newTestStore(t)

		tracker, err := store.Load()
		require.NoError(t, err)
		require.Empty(t, tracker.AllBranches())
	})

	t.Run("reads rows into relationships", func(t *testing.T) {
		store := newTestStore(t)
		content := "feature1,main,abc123,\nfeature2,feature1,def456,\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		tracker, err := store.Load()
		require.NoError(t, err)

		parent, err := tracker.Parent("feature1")
		require.NoError(t, err)
		require.Equal(t, "main", parent)

		parent, err = tracker.Parent("feature2")
		require.NoError(t, err)
		require.Equal(t, "feature1", parent)

		bases, err := tracker.Bases("feature1")
		require.NoError(t, err)
		require.Equal(t, []string{"abc123"}, bases)
	})

	t.Run("fourth column becomes a pending rebase base", func(t *testing.T) {
		store := newTestStore(t)
		content := "feature,main,abc123,def456\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		tracker, err := store.Load()
		require.NoError(t, err)

		bases, err := tracker.Bases("feature")
		require.NoError(t, err)
		require.Equal(t, []string{"abc123", "def456"}, bases)
	})

	t.Run("duplicate child is corrupt", func(t *testing.T) {
		store := newTestStore(t)
		content := "feature,main,abc123,\nfeature,develop,def456,\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		_, err := store.Load()
		require.ErrorIs(t, err, staxerrors.ErrCorruptState)
	})

	t.Run("short row is corrupt", func(t *testing.T) {
		store := newTestStore(t)
		content := "feature,main\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		_, err := store.Load()
		require.ErrorIs(t, err, staxerrors.ErrCorruptState)
	})

	t.Run("empty base commit is corrupt", func(t *testing.T) {
		store := newTestStore(t)
		content := "feature,main,,\n"
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		_, err := store.Load()
		require.ErrorIs(t, err, staxerrors.ErrCorruptState)
	})
}

func TestStoreSave(t *testing.T) {
	t.Run("round-trips the tracker", func(t *testing.T) {
		store := newTestStore(t)

		tracker := engine.NewTracker()
		require.NoError(t, tracker.AddChild("main", "feature1", "abc123"))
		require.NoError(t, tracker.AddChild("feature1", "feature2", "def456"))
		require.NoError(t, tracker.StartRebase("feature2", "fed789"))

		require.NoError(t, store.Save(tracker))

		loaded, err := store.Load()
		require.NoError(t, err)

		parent, err := loaded.Parent("feature2")
		require.NoError(t, err)
		require.Equal(t, "feature1", parent)
		require.Equal(t, []string{"feature1"}, loaded.Children("main"))

		bases, err := loaded.Bases("feature2")
		require.NoError(t, err)
		require.Equal(t, []string{"def456", "fed789"}, bases)
	})

	t.Run("rows are sorted by child name", func(t *testing.T) {
		store := newTestStore(t)

		tracker := engine.NewTracker()
		require.NoError(t, tracker.AddChild("main", "zebra", "c1"))
		require.NoError(t, tracker.AddChild("main", "alpha", "c2"))

		require.NoError(t, store.Save(tracker))

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		require.Equal(t, "alpha,main,c2,\nzebra,main,c1,\n", string(data))
	})

	t.Run("empty tracker writes an empty file", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.Save(engine.NewTracker()))

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("quotes names containing commas", func(t *testing.T) {
		store := newTestStore(t)

		tracker := engine.NewTracker()
		require.NoError(t, tracker.AddChild("main", "weird,name", "c1"))
		require.NoError(t, store.Save(tracker))

		loaded, err := store.Load()
		require.NoError(t, err)
		parent, err := loaded.Parent("weird,name")
		require.NoError(t, err)
		require.Equal(t, "main", parent)
	})

	t.Run("save replaces the previous file", func(t *testing.T) {
		store := newTestStore(t)

		tracker := engine.NewTracker()
		require.NoError(t, tracker.AddChild("main", "feature", "c1"))
		require.NoError(t, store.Save(tracker))

		require.NoError(t, tracker.RemoveLeaf("feature"))
		require.NoError(t, store.Save(tracker))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.False(t, loaded.IsTracked("feature"))

		_, err = os.Stat(store.Path() + ".tmp")
		require.True(t, os.IsNotExist(err))
	})
}
