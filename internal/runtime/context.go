// Package runtime wires the dependencies every workflow needs.
package runtime

import (
	"context"

	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/internal/github"
	"ezgit.dev/ezgit/internal/tui"
)

// DefaultRemote is the remote name every workflow operates against.
const DefaultRemote = "origin"

// Context carries the shared dependencies of a single command invocation.
type Context struct {
	Git    *git.Git
	Prompt tui.Prompter
	Splog  *tui.Splog
	Remote string

	// GitHub is nil when no API token is configured. Only the repository
	// management workflows need it.
	GitHub github.Client
}

// NewContext builds the production Context.
func NewContext() (*Context, error) {
	splog, err := tui.NewSplogFromEnv()
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Git:    git.New(git.NewRunner()),
		Prompt: tui.NewTerminalPrompter(),
		Splog:  splog,
		Remote: DefaultRemote,
	}

	// Missing token is fine until a workflow actually needs the API.
	if gh, err := github.NewClientFromEnv(context.Background()); err == nil {
		ctx.GitHub = gh
	}

	return ctx, nil
}
