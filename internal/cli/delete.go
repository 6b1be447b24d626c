package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newDeleteCmd creates the delete command
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [branch]",
		Aliases: []string{"del"},
		Short:   "Delete a branch locally and/or on the remote",
		Args:    cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return actions.Delete(ctx, actions.DeleteOptions{Branch: name})
		}),
	}
}
