package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newSwitchCmd creates the switch command
func newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "switch [branch]",
		Aliases: []string{"sw"},
		Short:   "Switch to another branch, tracking it from the remote if needed",
		Args:    cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return actions.Switch(ctx, actions.SwitchOptions{Branch: name})
		}),
	}
}
