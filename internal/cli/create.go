package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newCreateCmd creates the create command
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create [name]",
		Aliases: []string{"cr"},
		Short:   "Create a new branch at HEAD without switching to it",
		Args:    cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return actions.Create(ctx, actions.CreateOptions{Name: name})
		}),
	}
}
