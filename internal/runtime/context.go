// Package runtime provides the per-invocation context handed to commands:
// the store, the external command runner, and the logger.
package runtime

import (
	"context"

	"stax.dev/stax/internal/config"
	"stax.dev/stax/internal/engine"
	"stax.dev/stax/internal/git"
	"stax.dev/stax/internal/output"
)

// Context provides access to the store, executor, and output for commands
type Context struct {
	Store *engine.Store
	Git   git.Runner
	Splog *output.Splog
}

// GetContext builds the context for one command invocation. It resolves the
// branch file inside the repository's git directory, so it fails outside a
// git repository.
func GetContext(ctx context.Context) (*Context, error) {
	runner := git.NewCommandRunner()

	path, err := config.BranchFilePath(ctx, runner)
	if err != nil {
		return nil, err
	}

	splog, err := output.NewSplogWithFile(output.GetLogFilePath())
	if err != nil {
		splog = output.NewSplog()
	}

	return &Context{
		Store: engine.NewStore(path),
		Git:   runner,
		Splog: splog,
	}, nil
}
