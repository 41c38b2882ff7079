package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Run("registers every subcommand", func(t *testing.T) {
		rootCmd := NewRootCmd("1.0.0", "abcdef", "2026-01-01")

		expected := []string{
			"create", "move", "restack", "rename", "delete",
			"log", "info", "archive", "diff", "land",
		}
		for _, name := range expected {
			found := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == name {
					found = true
					break
				}
			}
			require.True(t, found, "missing command %s", name)
		}
	})

	t.Run("version string carries the build info", func(t *testing.T) {
		rootCmd := NewRootCmd("1.2.3", "abcdef", "2026-01-01")

		require.Contains(t, rootCmd.Version, "1.2.3")
		require.Contains(t, rootCmd.Version, "abcdef")
	})
}

func TestRegisterSubcommands(t *testing.T) {
	t.Run("panics on duplicate names", func(t *testing.T) {
		rootCmd := &cobra.Command{Use: "stax"}

		require.Panics(t, func() {
			registerSubcommands(rootCmd,
				&cobra.Command{Use: "create"},
				&cobra.Command{Use: "create <branch>"},
			)
		})
	})

	t.Run("accepts distinct names", func(t *testing.T) {
		rootCmd := &cobra.Command{Use: "stax"}

		require.NotPanics(t, func() {
			registerSubcommands(rootCmd,
				&cobra.Command{Use: "create"},
				&cobra.Command{Use: "delete"},
			)
		})
		require.Len(t, rootCmd.Commands(), 2)
	})
}
