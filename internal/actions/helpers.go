package actions

import (
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// promptNonEmpty asks until the user supplies a non-blank answer or cancels.
func promptNonEmpty(ctx *runtime.Context, message string) (string, error) {
	for {
		value, err := ctx.Prompt.Input(message, "")
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		ctx.Splog.Warn("A value is required.")
	}
}

// ensureBranchNotExists fails when the name already resolves to a local branch.
func ensureBranchNotExists(ctx *runtime.Context, name string) error {
	exists, err := ctx.Git.RefExists(name)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewBranchExistsError(name)
	}
	return nil
}

// ensureBranchExists fails when the name does not resolve to a local branch.
func ensureBranchExists(ctx *runtime.Context, name string) error {
	exists, err := ctx.Git.RefExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewBranchNotFoundError(name)
	}
	return nil
}

// promptAndPushOptional offers to push a branch to the configured remote. It
// is a no-op with a notice when no remote is configured. With needsCheckout
// set, the branch is checked out before pushing so upstream tracking lands on
// the right branch.
func promptAndPushOptional(ctx *runtime.Context, branch string, needsCheckout bool) error {
	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if url == "" {
		ctx.Splog.Info("No remote %q configured, skipping push.", ctx.Remote)
		return nil
	}

	push, err := ctx.Prompt.Confirm("Push " + branch + " to " + ctx.Remote + "?")
	if err != nil {
		return err
	}
	if !push {
		return nil
	}

	if needsCheckout {
		if err := ctx.Git.Checkout(branch); err != nil {
			return err
		}
	}

	if err := ctx.Git.PushUpstream(ctx.Remote, branch); err != nil {
		return err
	}
	ctx.Splog.Info("Pushed %s to %s.", branch, ctx.Remote)
	return nil
}
