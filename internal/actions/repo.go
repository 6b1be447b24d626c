package actions

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"

	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/github"
	"ezgit.dev/ezgit/internal/runtime"
)

// RepoInit initializes a repository in the current directory.
func RepoInit(ctx *runtime.Context) error {
	if _, err := os.Stat(".git"); err == nil {
		return errors.NewValidationError("a repository already exists here")
	}
	if err := ctx.Git.Init(); err != nil {
		return err
	}
	ctx.Splog.Info("Initialized empty repository.")
	return nil
}

// RepoCreateOptions configures RepoCreate.
type RepoCreateOptions struct {
	// Name is the repository name on the hosting service. Prompted for when
	// empty.
	Name string
	// Private creates a private repository.
	Private bool
}

// RepoCreate creates a repository on GitHub and registers it as the remote.
func RepoCreate(ctx *runtime.Context, opts RepoCreateOptions) error {
	if ctx.GitHub == nil {
		return errors.NewValidationError("no GitHub token found (set EZGIT_GITHUB_TOKEN or GITHUB_TOKEN)")
	}

	name := opts.Name
	if name == "" {
		var err error
		name, err = promptNonEmpty(ctx, "Repository name:")
		if err != nil {
			return err
		}
	}

	existing, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if existing != "" {
		return errors.NewValidationError("remote %q already points at %s", ctx.Remote, existing)
	}

	cloneURL, err := ctx.GitHub.CreateRepo(context.Background(), name, opts.Private)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Created repository %s.", name)

	if err := ctx.Git.RemoteAdd(ctx.Remote, cloneURL); err != nil {
		return err
	}
	ctx.Splog.Info("Added remote %s -> %s.", ctx.Remote, cloneURL)
	return nil
}

// RepoDelete deletes the repository the remote points at on GitHub. Two
// separate confirmations stand between the prompt and the API call.
func RepoDelete(ctx *runtime.Context) error {
	if ctx.GitHub == nil {
		return errors.NewValidationError("no GitHub token found (set EZGIT_GITHUB_TOKEN or GITHUB_TOKEN)")
	}

	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if url == "" {
		return errors.NewValidationError("no remote %q configured", ctx.Remote)
	}

	owner, repo, err := github.ParseOwnerRepo(url)
	if err != nil {
		return err
	}

	sure, err := ctx.Prompt.Confirm(fmt.Sprintf("Delete the repository %s/%s on GitHub?", owner, repo))
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	confirmed, err := ctx.Prompt.Input(fmt.Sprintf("Type %q to confirm:", repo), "")
	if err != nil {
		if goerrors.Is(err, errors.ErrCanceled) {
			return nil
		}
		return err
	}
	if confirmed != repo {
		ctx.Splog.Warn("Name did not match, nothing deleted.")
		return nil
	}

	if err := ctx.GitHub.DeleteRepo(context.Background(), owner, repo); err != nil {
		return err
	}
	ctx.Splog.Info("Deleted repository %s/%s.", owner, repo)

	if err := ctx.Git.RemoteRemove(ctx.Remote); err != nil {
		return err
	}
	ctx.Splog.Info("Removed remote %s.", ctx.Remote)
	return nil
}

// RemoteShow prints the URL of the configured remote.
func RemoteShow(ctx *runtime.Context) error {
	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if url == "" {
		ctx.Splog.Info("No remote %q configured.", ctx.Remote)
		return nil
	}
	ctx.Splog.Info("%s: %s", ctx.Remote, url)
	return nil
}

// RemoteAdd registers the remote, or updates it when one already exists and
// the user approves.
func RemoteAdd(ctx *runtime.Context, url string) error {
	if url == "" {
		var err error
		url, err = promptNonEmpty(ctx, "Remote URL:")
		if err != nil {
			return err
		}
	}

	existing, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if existing != "" {
		replace, err := ctx.Prompt.Confirm(fmt.Sprintf("Remote %q already points at %s. Replace it?", ctx.Remote, existing))
		if err != nil {
			return err
		}
		if !replace {
			return nil
		}
		if err := ctx.Git.RemoteSetURL(ctx.Remote, url); err != nil {
			return err
		}
		ctx.Splog.Info("Updated remote %s -> %s.", ctx.Remote, url)
		return nil
	}

	if err := ctx.Git.RemoteAdd(ctx.Remote, url); err != nil {
		return err
	}
	ctx.Splog.Info("Added remote %s -> %s.", ctx.Remote, url)
	return nil
}

// RemoteSetURL changes the URL of the configured remote.
func RemoteSetURL(ctx *runtime.Context, url string) error {
	existing, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if existing == "" {
		return errors.NewValidationError("no remote %q configured", ctx.Remote)
	}

	if url == "" {
		url, err = promptNonEmpty(ctx, "Remote URL:")
		if err != nil {
			return err
		}
	}

	if err := ctx.Git.RemoteSetURL(ctx.Remote, url); err != nil {
		return err
	}
	ctx.Splog.Info("Updated remote %s -> %s.", ctx.Remote, url)
	return nil
}

// RemoteRemove removes the configured remote after confirmation.
func RemoteRemove(ctx *runtime.Context) error {
	existing, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if existing == "" {
		return errors.NewValidationError("no remote %q configured", ctx.Remote)
	}

	sure, err := ctx.Prompt.Confirm(fmt.Sprintf("Remove remote %q (%s)?", ctx.Remote, existing))
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	if err := ctx.Git.RemoteRemove(ctx.Remote); err != nil {
		return err
	}
	ctx.Splog.Info("Removed remote %s.", ctx.Remote)
	return nil
}

// RemoteMenu runs the interactive remote management menu used when
// `ezgit repo remote` is invoked without a subcommand.
func RemoteMenu(ctx *runtime.Context) error {
	existing, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}

	if existing != "" {
		ctx.Splog.Info("%s: %s", ctx.Remote, existing)
	} else {
		ctx.Splog.Info("No remote %q configured.", ctx.Remote)
	}

	options := []string{
		"Set the remote URL",
		"Remove the remote",
		"Cancel",
	}
	choice, err := ctx.Prompt.Select("What do you want to do?", options, 2)
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return RemoteAdd(ctx, "")
	case 1:
		if existing == "" {
			return errors.NewValidationError("no remote %q configured", ctx.Remote)
		}
		return RemoteRemove(ctx)
	default:
		return nil
	}
}
