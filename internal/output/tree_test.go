package output_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stax.dev/stax/internal/output"
)

func TestRenderForest(t *testing.T) {
	children := map[string][]string{
		"main":     {"feature1", "feature3"},
		"feature1": {"feature2"},
	}
	getChildren := func(name string) []string { return children[name] }

	t.Run("renders children indented under their parent", func(t *testing.T) {
		renderer := output.NewTreeRenderer("feature2", getChildren, nil)

		lines := renderer.RenderForest([]string{"main"}, output.TreeRenderOptions{NoStyle: true})
		require.Equal(t, []string{
			"◯ main",
			"│  ◯ feature1",
			"│  │  ◉ feature2",
			"│  ◯ feature3",
		}, lines)
	})

	t.Run("renders multiple roots", func(t *testing.T) {
		renderer := output.NewTreeRenderer("", func(string) []string { return nil }, nil)

		lines := renderer.RenderForest([]string{"main", "develop"}, output.TreeRenderOptions{NoStyle: true})
		require.Equal(t, []string{"◯ main", "◯ develop"}, lines)
	})

	t.Run("annotations are appended", func(t *testing.T) {
		annotate := func(name string) string {
			if name == "feature1" {
				return "(rebasing)"
			}
			return ""
		}
		renderer := output.NewTreeRenderer("", getChildren, annotate)

		lines := renderer.RenderForest([]string{"main"}, output.TreeRenderOptions{NoStyle: true})
		require.Equal(t, "│  ◯ feature1 (rebasing)", lines[1])
	})
}
