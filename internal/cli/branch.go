package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "branch",
		Aliases: []string{"br"},
		Short:   "List branches with their sync status",
		Args:    cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.ListBranches(ctx)
		}),
	}
}
