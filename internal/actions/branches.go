package actions

import (
	"fmt"
	"strings"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/runtime"
	"ezgit.dev/ezgit/internal/tui"
)

// ListBranches prints every branch with its sync classification. Read only:
// aside from the initial fetch it never mutates repository state.
func ListBranches(ctx *runtime.Context) error {
	url, err := ctx.Git.RemoteURL(ctx.Remote)
	if err != nil {
		return err
	}
	if url != "" {
		if err := ctx.Git.FetchPrune(ctx.Remote); err != nil {
			return err
		}
		ctx.Splog.Debug("Fetched %s with prune.", ctx.Remote)
	}

	names, err := ctx.Git.AllBranches()
	if err != nil {
		return err
	}

	current, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}
	dirty, err := ctx.Git.HasUncommittedChanges()
	if err != nil {
		return err
	}

	locals := make(map[string]bool)
	for _, name := range names {
		if !strings.HasPrefix(name, ctx.Remote+"/") {
			locals[name] = true
		}
	}

	var b strings.Builder
	prefix := ctx.Remote + "/"

	for _, name := range names {
		if short, ok := strings.CutPrefix(name, prefix); ok {
			// Remote-tracking entries with a local counterpart are covered
			// by the local line's classification.
			if locals[short] {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", short, tui.ColorNote("(remote only)")))
			continue
		}

		localID, err := ctx.Git.CommitID(name)
		if err != nil {
			return err
		}
		status, note, err := branch.Classify(ctx.Git, ctx.Remote, name, localID)
		if err != nil {
			return err
		}

		isCurrent := name == current
		marker := " "
		if isCurrent {
			marker = "*"
		}

		line := fmt.Sprintf("%s %s", marker, tui.ColorBranchName(name, status, isCurrent))
		if isCurrent && dirty {
			line += tui.ColorDirtyMarker()
		}
		if note != "" {
			line += " " + tui.ColorNote("("+note+")")
		}
		b.WriteString(line + "\n")
	}

	ctx.Splog.Page(b.String())
	return nil
}
