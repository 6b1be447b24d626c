package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newTreeCmd creates the tree command
func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tree",
		Aliases: []string{"tr"},
		Short:   "Show the commit graph as a topologically ordered listing",
		Args:    cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.Tree(ctx)
		}),
	}
}
