package actions

import (
	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// CopyOptions configures Copy.
type CopyOptions struct {
	// Source is the branch to copy from. Selected interactively when empty.
	Source string
	// Name is the new branch name. Prompted for when empty.
	Name string
}

// Copy creates a new branch from the tip of an existing one.
func Copy(ctx *runtime.Context, opts CopyOptions) error {
	source := opts.Source
	if source == "" {
		choices, err := branch.SelectChoices(ctx.Git, ctx.Remote)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			return errors.NewValidationError("no branches to copy from")
		}
		source, err = ctx.Prompt.SelectBranch("Copy which branch?", choices)
		if err != nil {
			return err
		}
	}

	res, err := branch.Resolve(ctx.Git, ctx.Remote, source)
	if err != nil {
		return err
	}
	if !res.LocalExists && !res.RemoteExists {
		return errors.NewBranchNotFoundError(source)
	}

	name := opts.Name
	if name == "" {
		name, err = promptNonEmpty(ctx, "Name for the new branch:")
		if err != nil {
			return err
		}
	}
	if err := ensureBranchNotExists(ctx, name); err != nil {
		return err
	}

	if err := ctx.Git.CreateBranchFrom(name, source); err != nil {
		return err
	}
	ctx.Splog.Info("Created %s from %s.", name, source)

	return promptAndPushOptional(ctx, name, true)
}
