// Package errors provides sentinel errors and custom error types for the ezgit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a branch already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrCanceled indicates that the user canceled an interactive prompt.
	// Canceling is a benign outcome, never a failure: the command dispatcher
	// converts it into a clean exit.
	ErrCanceled = errors.New("canceled")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when a branch name is already taken
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// ValidationError represents a failed local precondition on user input.
// Validation failures are reported before any git command with side effects runs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GitCommandError represents a git command that exited non-zero while it was
// expected to succeed
type GitCommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git %s failed (exit code %d)", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	return msg
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(args []string, exitCode int, stdout, stderr string) *GitCommandError {
	return &GitCommandError{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// SpawnError represents a git command that could not be launched at all
// (missing binary, permission problem)
type SpawnError struct {
	Args []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(args []string, err error) *SpawnError {
	return &SpawnError{Args: args, Err: err}
}
