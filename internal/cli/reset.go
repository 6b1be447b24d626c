package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var hard bool

	cmd := &cobra.Command{
		Use:     "reset",
		Aliases: []string{"rs"},
		Short:   "Undo the last commit",
		Args:    cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.Reset(ctx, actions.ResetOptions{Hard: hard})
		}),
	}

	cmd.Flags().BoolVar(&hard, "hard", false, "also discard the commit's changes from the working tree")

	return cmd
}
