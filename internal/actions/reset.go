package actions

import (
	"ezgit.dev/ezgit/internal/runtime"
)

// ResetOptions configures Reset.
type ResetOptions struct {
	// Hard discards the undone commit's changes from the working tree.
	Hard bool
}

// Reset undoes the last commit. The soft form keeps its changes in the
// working tree; the hard form throws them away after an extra confirmation.
func Reset(ctx *runtime.Context, opts ResetOptions) error {
	sure, err := ctx.Prompt.Confirm("Undo the last commit?")
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	if opts.Hard {
		really, err := ctx.Prompt.Confirm("Also discard its changes from the working tree? This cannot be undone.")
		if err != nil {
			return err
		}
		if !really {
			return nil
		}
	}

	if err := ctx.Git.UndoLastCommit(opts.Hard); err != nil {
		return err
	}

	if opts.Hard {
		ctx.Splog.Info("Last commit undone and its changes discarded.")
	} else {
		ctx.Splog.Info("Last commit undone. Its changes are back in the working tree.")
	}
	return nil
}
