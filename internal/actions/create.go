package actions

import (
	"ezgit.dev/ezgit/internal/runtime"
)

// CreateOptions configures Create.
type CreateOptions struct {
	// Name is the new branch name. Prompted for when empty.
	Name string
}

// Create creates a new local branch at HEAD without switching to it.
func Create(ctx *runtime.Context, opts CreateOptions) error {
	name := opts.Name
	if name == "" {
		var err error
		name, err = promptNonEmpty(ctx, "Name for the new branch:")
		if err != nil {
			return err
		}
	}
	if err := ensureBranchNotExists(ctx, name); err != nil {
		return err
	}

	if err := ctx.Git.CreateBranch(name); err != nil {
		return err
	}
	ctx.Splog.Info("Created branch %s.", name)

	return promptAndPushOptional(ctx, name, true)
}
