package actions

import (
	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
	"ezgit.dev/ezgit/internal/tui"
)

// SwitchOptions configures Switch.
type SwitchOptions struct {
	// Branch is the branch to switch to. Selected interactively when empty.
	Branch string
}

// Switch checks out another branch, creating a tracking branch when the
// selection only exists on the remote.
func Switch(ctx *runtime.Context, opts SwitchOptions) error {
	outcome, err := GuardUncommitted(ctx, "switch")
	if err != nil {
		return err
	}
	if outcome == Abort {
		return nil
	}

	selection := opts.Branch
	if selection == "" {
		choices, err := branch.SelectChoices(ctx.Git, ctx.Remote)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			return errors.NewValidationError("no branches to switch to")
		}
		selection, err = ctx.Prompt.SelectBranch("Switch to which branch?", choices)
		if err != nil {
			return err
		}
	}

	res, err := branch.Resolve(ctx.Git, ctx.Remote, selection)
	if err != nil {
		return err
	}

	switch {
	case res.LocalExists:
		if err := ctx.Git.Checkout(res.LocalName); err != nil {
			return err
		}
		ctx.Splog.Info("Switched to %s.", tui.ColorEmphasis(res.LocalName))
		return nil

	case res.RemoteExists:
		track, err := ctx.Prompt.Confirm("Branch " + res.LocalName + " only exists on " + ctx.Remote + ". Create a local branch tracking it?")
		if err != nil {
			return err
		}
		if !track {
			return nil
		}
		if err := ctx.Git.CheckoutTrack(res.RemoteName); err != nil {
			return err
		}
		ctx.Splog.Info("Switched to %s (tracking %s).", tui.ColorEmphasis(res.LocalName), res.RemoteName)
		return nil

	default:
		return errors.NewBranchNotFoundError(selection)
	}
}
