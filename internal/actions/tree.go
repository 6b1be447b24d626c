package actions

import (
	"ezgit.dev/ezgit/internal/runtime"
)

// Tree prints the commit graph as a topologically ordered listing.
func Tree(ctx *runtime.Context) error {
	out, err := ctx.Git.ShowBranchTree()
	if err != nil {
		return err
	}
	ctx.Splog.Page(out)
	ctx.Splog.Newline()
	return nil
}
