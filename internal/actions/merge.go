package actions

import (
	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// MergeOptions configures Merge.
type MergeOptions struct {
	// Branch is the branch to merge into the current one. Selected
	// interactively when empty.
	Branch string
}

// Merge merges another branch into the current one, offering to clean up the
// merged local branch afterwards and to salvage conflicted state on failure.
func Merge(ctx *runtime.Context, opts MergeOptions) error {
	outcome, err := GuardUncommitted(ctx, "merge")
	if err != nil {
		return err
	}
	if outcome == Abort {
		return nil
	}

	current, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}
	if current == "" {
		return errors.ErrNotOnBranch
	}

	selection := opts.Branch
	if selection == "" {
		choices, err := branch.SelectChoices(ctx.Git, ctx.Remote)
		if err != nil {
			return err
		}
		choices = branch.Exclude(choices, current, branch.RemoteTrackingName(ctx.Remote, current))
		if len(choices) == 0 {
			return errors.NewValidationError("no branches to merge")
		}
		selection, err = ctx.Prompt.SelectBranch("Merge which branch into "+current+"?", choices)
		if err != nil {
			return err
		}
	}

	if selection == current || selection == branch.RemoteTrackingName(ctx.Remote, current) {
		return errors.NewValidationError("cannot merge %s into itself", current)
	}

	res, err := branch.Resolve(ctx.Git, ctx.Remote, selection)
	if err != nil {
		return err
	}
	if !res.LocalExists && !res.RemoteExists {
		return errors.NewBranchNotFoundError(selection)
	}

	target := selection
	ok, err := ctx.Git.Merge(target)
	if err != nil {
		return err
	}
	if !ok {
		return RecoverFromConflict(ctx, "merge")
	}
	ctx.Splog.Info("Merged %s into %s.", target, current)

	// Offer cleanup only when the merged ref was the local branch itself.
	if res.LocalExists && target == res.LocalName {
		del, err := ctx.Prompt.Confirm("Delete the merged branch " + res.LocalName + "?")
		if err != nil {
			return err
		}
		if del {
			if err := ctx.Git.DeleteLocalBranch(res.LocalName); err != nil {
				return err
			}
			ctx.Splog.Info("Deleted %s.", res.LocalName)
		}
	}

	return nil
}
