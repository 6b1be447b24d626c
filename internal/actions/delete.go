package actions

import (
	"strings"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// DeleteOptions configures Delete.
type DeleteOptions struct {
	// Branch is the branch to delete, either a local name or a
	// "<remote>/<branch>" remote-tracking name. Selected interactively when
	// empty.
	Branch string
}

// Delete removes a branch locally and/or on the remote, each side behind its
// own confirmation. The currently checked-out branch is refused outright.
func Delete(ctx *runtime.Context, opts DeleteOptions) error {
	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	hasRemote := url != ""

	if hasRemote {
		if err := ctx.Git.FetchPrune(ctx.Remote); err != nil {
			return err
		}
		ctx.Splog.Debug("Fetched %s with prune.", ctx.Remote)
	}

	selection := opts.Branch
	if selection == "" {
		choices, err := branch.SelectChoices(ctx.Git, ctx.Remote)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			return errors.NewValidationError("no branches to delete")
		}
		selection, err = ctx.Prompt.SelectBranch("Delete which branch?", choices)
		if err != nil {
			return err
		}
	}

	current, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}
	if selection == current && current != "" {
		return errors.NewValidationError("cannot delete the currently checked-out branch %s", current)
	}

	res, err := branch.Resolve(ctx.Git, ctx.Remote, selection)
	if err != nil {
		return err
	}

	deleted := false

	if strings.HasPrefix(selection, ctx.Remote+"/") {
		// A remote-prefixed selection targets only the remote side.
		if !hasRemote {
			return errors.NewValidationError("no remote %q configured", ctx.Remote)
		}
		if !res.RemoteExists {
			return errors.NewBranchNotFoundError(selection)
		}
		del, err := ctx.Prompt.Confirm("Delete " + res.LocalName + " on " + ctx.Remote + "?")
		if err != nil {
			return err
		}
		if del {
			if err := ctx.Git.PushDelete(ctx.Remote, res.LocalName); err != nil {
				return err
			}
			ctx.Splog.Info("Deleted %s on %s.", res.LocalName, ctx.Remote)
			deleted = true
		}
	} else {
		if !res.LocalExists && !res.RemoteExists {
			return errors.NewBranchNotFoundError(selection)
		}

		if res.LocalExists {
			del, err := ctx.Prompt.Confirm("Delete local branch " + res.LocalName + "?")
			if err != nil {
				return err
			}
			if del {
				if err := ctx.Git.DeleteLocalBranch(res.LocalName); err != nil {
					return err
				}
				ctx.Splog.Info("Deleted local branch %s.", res.LocalName)
				deleted = true
			}
		}

		if res.RemoteExists {
			del, err := ctx.Prompt.Confirm("Also delete " + res.LocalName + " on " + ctx.Remote + "?")
			if err != nil {
				return err
			}
			if del {
				if err := ctx.Git.PushDelete(ctx.Remote, res.LocalName); err != nil {
					return err
				}
				ctx.Splog.Info("Deleted %s on %s.", res.LocalName, ctx.Remote)
				deleted = true
			}
		}
	}

	if !deleted {
		ctx.Splog.Info("No deletion performed.")
	}
	return nil
}
