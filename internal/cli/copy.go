package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newCopyCmd creates the copy command
func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "copy [source] [name]",
		Aliases: []string{"cp"},
		Short:   "Create a new branch from the tip of an existing one",
		Args:    cobra.MaximumNArgs(2),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			opts := actions.CopyOptions{}
			if len(args) > 0 {
				opts.Source = args[0]
			}
			if len(args) > 1 {
				opts.Name = args[1]
			}
			return actions.Copy(ctx, opts)
		}),
	}
}
