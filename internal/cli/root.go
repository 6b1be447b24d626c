// Package cli wires the cobra command tree. Commands only parse arguments
// and dispatch; the workflows live in internal/actions.
package cli

import (
	goerrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ezgit",
		Short:   "ezgit makes everyday git workflows fast and safe",
		Long:    "ezgit wraps the git you already have with short, guided workflows\nfor saving, switching, merging, copying and deleting branches.",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),

		// Errors are reported through Splog by the run wrapper; cobra
		// would print them a second time.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newRepoCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// run wraps a workflow with context construction and outcome handling.
func run(fn func(ctx *runtime.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := runtime.NewContext()
		if err != nil {
			return err
		}
		defer func() { _ = ctx.Splog.Close() }()

		return finish(ctx, fn(ctx, args))
	}
}

// finish maps a workflow result to the process outcome: a canceled prompt
// prints a notice and exits clean, a real error is reported and propagated
// so main exits non-zero.
func finish(ctx *runtime.Context, err error) error {
	if err == nil {
		return nil
	}
	if goerrors.Is(err, errors.ErrCanceled) {
		ctx.Splog.Info("Canceled.")
		return nil
	}
	ctx.Splog.Error("%v", err)
	return err
}
