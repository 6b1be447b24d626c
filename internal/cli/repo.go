package cli

import (
	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/runtime"
)

// newRepoCmd creates the repo command group
func newRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage the repository and its remote",
	}

	cmd.AddCommand(newRepoInitCmd())
	cmd.AddCommand(newRepoCreateCmd())
	cmd.AddCommand(newRepoDeleteCmd())
	cmd.AddCommand(newRepoRemoteCmd())

	return cmd
}

func newRepoInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a repository in the current directory",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.RepoInit(ctx)
		}),
	}
}

func newRepoCreateCmd() *cobra.Command {
	var private bool

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a repository on GitHub and register it as the remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return actions.RepoCreate(ctx, actions.RepoCreateOptions{
				Name:    name,
				Private: private,
			})
		}),
	}

	cmd.Flags().BoolVar(&private, "private", false, "create a private repository")

	return cmd
}

func newRepoDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the repository the remote points at on GitHub",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.RepoDelete(ctx)
		}),
	}
}

func newRepoRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage the remote",
		// Without a subcommand, fall through to the interactive menu.
		Args: cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.RemoteMenu(ctx)
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [url]",
		Short: "Register the remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}
			return actions.RemoteAdd(ctx, url)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-url [url]",
		Short: "Change the remote URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(ctx *runtime.Context, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}
			return actions.RemoteSetURL(ctx, url)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: "Remove the remote",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.RemoteRemove(ctx)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the remote URL",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx *runtime.Context, _ []string) error {
			return actions.RemoteShow(ctx)
		}),
	})

	return cmd
}
