package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stax.dev/stax/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stax",
		Short: "Stax tracks the parent/child structure of stacked branches",
		Long: `Stax tracks the parent/child structure of stacked branches so you can
create, restack, and land dependent branches without re-deriving the
stack from history.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			output.InitColorProfile()
		},
	}

	registerSubcommands(rootCmd,
		newCreateCmd(),
		newMoveCmd(),
		newRestackCmd(),
		newRenameCmd(),
		newDeleteCmd(),
		newLogCmd(),
		newInfoCmd(),
		newArchiveCmd(),
		newDiffCmd(),
		newLandCmd(),
	)

	return rootCmd
}

// registerSubcommands adds subcommands to the root, panicking at startup if
// two handlers claim the same name.
func registerSubcommands(rootCmd *cobra.Command, cmds ...*cobra.Command) {
	seen := make(map[string]bool)
	for _, cmd := range cmds {
		name := cmd.Name()
		if seen[name] {
			panic(fmt.Sprintf("duplicate command name: %s", name))
		}
		seen[name] = true
		rootCmd.AddCommand(cmd)
	}
}
