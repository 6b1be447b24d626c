package testhelpers

import (
	"context"
	"fmt"

	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/internal/runtime"
	"ezgit.dev/ezgit/internal/tui"
)

// NewTestContext assembles a runtime.Context over the given doubles.
func NewTestContext(r git.Runner, p tui.Prompter) *runtime.Context {
	return &runtime.Context{
		Git:    git.New(r),
		Prompt: p,
		Splog:  tui.NewSplog(),
		Remote: runtime.DefaultRemote,
	}
}

// FakeGitHub is a scripted github.Client.
type FakeGitHub struct {
	CloneURL  string
	CreateErr error
	DeleteErr error

	CreatedName    string
	CreatedPrivate bool
	DeletedOwner   string
	DeletedName    string
}

// CreateRepo implements github.Client.
func (f *FakeGitHub) CreateRepo(_ context.Context, name string, private bool) (string, error) {
	if f.CreateErr != nil {
		return "", f.CreateErr
	}
	f.CreatedName = name
	f.CreatedPrivate = private
	if f.CloneURL != "" {
		return f.CloneURL, nil
	}
	return fmt.Sprintf("https://github.com/tester/%s.git", name), nil
}

// DeleteRepo implements github.Client.
func (f *FakeGitHub) DeleteRepo(_ context.Context, owner, name string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.DeletedOwner = owner
	f.DeletedName = name
	return nil
}
