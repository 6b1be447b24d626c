package actions

import (
	goerrors "errors"

	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// GuardUncommitted checks the working tree before an action that would
// clobber uncommitted changes. A clean tree continues without prompting.
// A dirty tree offers to commit the changes, carry them to a new branch,
// discard them, or cancel; canceling (or Esc/Ctrl+C) aborts the action
// without error.
func GuardUncommitted(ctx *runtime.Context, action string) (Outcome, error) {
	dirty, err := ctx.Git.HasUncommittedChanges()
	if err != nil {
		return Abort, err
	}
	if !dirty {
		return Continue, nil
	}

	ctx.Splog.Warn("You have uncommitted changes.")

	options := []string{
		"Commit the changes now",
		"Carry the changes to a new branch",
		"Discard the changes (cannot be undone)",
		"Cancel " + action,
	}

	choice, err := ctx.Prompt.Select("What do you want to do with them?", options, 3)
	if err != nil {
		if goerrors.Is(err, errors.ErrCanceled) {
			return Abort, nil
		}
		return Abort, err
	}

	switch choice {
	case 0:
		message, err := promptNonEmpty(ctx, "Commit message:")
		if err != nil {
			if goerrors.Is(err, errors.ErrCanceled) {
				return Abort, nil
			}
			return Abort, err
		}
		if err := ctx.Git.StageAll(); err != nil {
			return Abort, err
		}
		if err := ctx.Git.Commit(message); err != nil {
			return Abort, err
		}
		ctx.Splog.Info("Changes committed.")
		return Continue, nil

	case 1:
		name, err := promptNonEmpty(ctx, "Name for the new branch:")
		if err != nil {
			if goerrors.Is(err, errors.ErrCanceled) {
				return Abort, nil
			}
			return Abort, err
		}
		if err := ensureBranchNotExists(ctx, name); err != nil {
			return Abort, err
		}
		// The branch points at HEAD; the dirty working tree stays put and
		// travels with whatever checkout happens next.
		if err := ctx.Git.CreateBranch(name); err != nil {
			return Abort, err
		}
		ctx.Splog.Info("Created branch %s. Your changes are preserved; switch to it to commit them.", name)
		return Abort, nil

	case 2:
		sure, err := ctx.Prompt.Confirm("Discard ALL uncommitted changes? This cannot be undone.")
		if err != nil {
			if goerrors.Is(err, errors.ErrCanceled) {
				return Abort, nil
			}
			return Abort, err
		}
		if !sure {
			return Abort, nil
		}
		if err := ctx.Git.DiscardChanges(); err != nil {
			return Abort, err
		}
		ctx.Splog.Info("Changes discarded.")
		return Continue, nil

	default:
		return Abort, nil
	}
}
