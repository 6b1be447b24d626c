package actions

import (
	"ezgit.dev/ezgit/internal/runtime"
)

// SaveOptions configures Save.
type SaveOptions struct {
	// Message is the commit message. Prompted for when empty.
	Message string
}

// Save stages everything, commits, and optionally syncs with the remote.
func Save(ctx *runtime.Context, opts SaveOptions) error {
	message := opts.Message
	if message == "" {
		var err error
		message, err = promptNonEmpty(ctx, "Commit message:")
		if err != nil {
			return err
		}
	}

	if err := ctx.Git.StageAll(); err != nil {
		return err
	}
	if err := ctx.Git.Commit(message); err != nil {
		return err
	}
	ctx.Splog.Info("Changes committed.")

	current, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}
	if current == "" {
		ctx.Splog.Warn("HEAD is detached, skipping push.")
		return nil
	}

	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if url == "" {
		ctx.Splog.Info("No remote %q configured, skipping push.", ctx.Remote)
		return nil
	}

	push, err := ctx.Prompt.Confirm("Push " + current + " to " + ctx.Remote + "?")
	if err != nil {
		return err
	}
	if push {
		if err := ctx.Git.PushUpstream(ctx.Remote, current); err != nil {
			return err
		}
		ctx.Splog.Info("Pushed %s to %s.", current, ctx.Remote)
	}

	pull, err := ctx.Prompt.Confirm("Pull " + current + " from " + ctx.Remote + "?")
	if err != nil {
		return err
	}
	if pull {
		ok, err := ctx.Git.Pull(ctx.Remote, current)
		if err != nil {
			return err
		}
		if !ok {
			return RecoverFromConflict(ctx, "pull")
		}
		ctx.Splog.Info("Pulled %s from %s.", current, ctx.Remote)
	}

	return nil
}
