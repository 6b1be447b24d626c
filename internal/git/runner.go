// Package git invokes the git binary as a subprocess and exposes a typed
// facade over the operations ezgit needs. The git binary is treated as a
// black box: every call spawns exactly one process, and no repository state
// is touched except through it.
package git

import (
	"bytes"
	goerrors "errors"
	"os"
	"os/exec"
	"strings"

	"ezgit.dev/ezgit/internal/errors"
)

// Runner invokes the external git binary in one of three modes. It is the
// single seam between ezgit and the outside world: production code uses
// ExecRunner, tests substitute a scripted double.
type Runner interface {
	// Output runs git with the given arguments, captures stdout and returns
	// it trimmed of surrounding whitespace. A non-zero exit is an error.
	Output(args ...string) (string, error)

	// Run runs git with the child inheriting the parent's standard streams,
	// for commands that need a pager, editor or progress output. A non-zero
	// exit is an error.
	Run(args ...string) error

	// Succeeds runs git with both streams discarded and reports whether the
	// exit status was zero. A non-zero exit is an ordinary result here, not
	// an error: this is the mode for commands whose failure is itself the
	// answer (merge, pull).
	Succeeds(args ...string) (bool, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	program string
}

// NewRunner returns a Runner that invokes the git binary from PATH.
func NewRunner() *ExecRunner {
	return &ExecRunner{program: "git"}
}

// NewRunnerFor returns a Runner that invokes the named program instead of
// git. Used by tests to exercise the process plumbing without a repository.
func NewRunnerFor(program string) *ExecRunner {
	return &ExecRunner{program: program}
}

// Output implements Runner.
func (r *ExecRunner) Output(args ...string) (string, error) {
	cmd := exec.Command(r.program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			return "", errors.NewGitCommandError(args, exitErr.ExitCode(),
				strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()))
		}
		return "", errors.NewSpawnError(args, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Run implements Runner.
func (r *ExecRunner) Run(args ...string) error {
	cmd := exec.Command(r.program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			return errors.NewGitCommandError(args, exitErr.ExitCode(), "", "")
		}
		return errors.NewSpawnError(args, err)
	}

	return nil
}

// Succeeds implements Runner.
func (r *ExecRunner) Succeeds(args ...string) (bool, error) {
	cmd := exec.Command(r.program, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if goerrors.As(err, &exitErr) {
			return false, nil
		}
		return false, errors.NewSpawnError(args, err)
	}

	return true, nil
}
