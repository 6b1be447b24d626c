package actions

import (
	"fmt"

	"ezgit.dev/ezgit/internal/runtime"
	"ezgit.dev/ezgit/internal/tui"
)

// RecoverFromConflict runs after a merge or pull stopped on conflicts. It
// offers to salvage the half-merged state onto a new branch; declining leaves
// the conflict in place and returns an error so the command exits non-zero.
func RecoverFromConflict(ctx *runtime.Context, operation string) error {
	ctx.Splog.Warn("The %s stopped because of conflicts.", operation)

	salvage, err := ctx.Prompt.Confirm("Move the conflicted state to a new branch so you can resolve it there?")
	if err != nil {
		return err
	}
	if !salvage {
		return fmt.Errorf("resolve the %s conflict manually, then commit", operation)
	}

	name, err := promptNonEmpty(ctx, "Name for the new branch:")
	if err != nil {
		return err
	}
	if err := ensureBranchNotExists(ctx, name); err != nil {
		return err
	}

	if err := ctx.Git.CheckoutNew(name); err != nil {
		return err
	}

	ctx.Splog.Info("Switched to new branch %s with the conflicted state.", tui.ColorEmphasis(name))
	ctx.Splog.Tip("Resolve the conflicts, then run `ezgit save` to commit.")
	return nil
}
