package tui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when an interactive prompt would be
// needed but stdin is not a terminal (or EZGIT_NO_INTERACTIVE is set).
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (stdin is not a terminal)")

// Interactive reports whether interactive prompts can run.
func Interactive() bool {
	if os.Getenv("EZGIT_NO_INTERACTIVE") != "" {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// checkInteractiveAllowed returns an error if interactive prompts cannot run.
func checkInteractiveAllowed() error {
	if !Interactive() {
		return ErrInteractiveDisabled
	}
	return nil
}
