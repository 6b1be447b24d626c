package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchNotFoundError(t *testing.T) {
	err := NewBranchNotFoundError("feature")
	require.True(t, errors.Is(err, ErrBranchNotFound))
	require.Contains(t, err.Error(), "feature")
}

func TestBranchExistsError(t *testing.T) {
	err := NewBranchExistsError("feature")
	require.True(t, errors.Is(err, ErrBranchExists))
	require.Contains(t, err.Error(), "feature")
}

func TestGitCommandError(t *testing.T) {
	err := NewGitCommandError([]string{"merge", "feature"}, 1, "out", "err")
	require.Contains(t, err.Error(), "git merge feature")
	require.Contains(t, err.Error(), "exit code 1")
	require.Contains(t, err.Error(), "err")
}

func TestSpawnErrorUnwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := NewSpawnError([]string{"status"}, cause)
	require.ErrorIs(t, err, cause)
}
