package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newSaveCmd creates the save command
func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "save [message]",
		Aliases: []string{"sa"},
		Short:   "Stage everything, commit, and optionally sync with the remote",
		Args:    cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			message := ""
			if len(args) > 0 {
				message = args[0]
			}
			return actions.Save(ctx, actions.SaveOptions{Message: message})
		}),
	}
}
