package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "merge [branch]",
		Aliases: []string{"me"},
		Short:   "Merge another branch into the current one",
		Args:    cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return actions.Merge(ctx, actions.MergeOptions{Branch: name})
		}),
	}
}
