package branch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/testhelpers"
)

func classifyFixture(remoteExists bool, remoteID, base string) *testhelpers.FakeRunner {
	r := testhelpers.NewFakeRunner()
	r.Statuses["rev-parse --verify --quiet origin/feature"] = remoteExists
	r.Outputs["rev-parse origin/feature"] = remoteID
	r.Outputs["merge-base aaa "+remoteID] = base
	return r
}

func TestClassify(t *testing.T) {
	t.Run("no remote counterpart is local only", func(t *testing.T) {
		r := classifyFixture(false, "", "")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusLocalOnly, status)
		require.Empty(t, note)
	})

	t.Run("equal commits are synced", func(t *testing.T) {
		r := classifyFixture(true, "aaa", "")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusSynced, status)
		require.Empty(t, note)
	})

	t.Run("ancestor equal to remote means ahead", func(t *testing.T) {
		r := classifyFixture(true, "bbb", "bbb")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusAhead, status)
		require.Equal(t, "needs push", note)
	})

	t.Run("ancestor equal to local means behind", func(t *testing.T) {
		r := classifyFixture(true, "bbb", "aaa")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusBehind, status)
		require.Equal(t, "needs pull", note)
	})

	t.Run("ancestor equal to neither means diverged", func(t *testing.T) {
		r := classifyFixture(true, "bbb", "ccc")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusDiverged, status)
		require.Equal(t, "diverged", note)
	})

	t.Run("unrelated histories degrade to local only", func(t *testing.T) {
		r := classifyFixture(true, "bbb", "")
		r.Errors["merge-base aaa bbb"] = errors.NewGitCommandError(
			[]string{"merge-base", "aaa", "bbb"}, 1, "", "")

		status, note, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.NoError(t, err)
		require.Equal(t, branch.StatusLocalOnly, status)
		require.Empty(t, note)
	})

	t.Run("failure probing the remote ref propagates", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Errors["rev-parse --verify --quiet origin/feature"] = errors.NewSpawnError(
			[]string{"rev-parse"}, errors.ErrBranchNotFound)

		_, _, err := branch.Classify(git.New(r), "origin", "feature", "aaa")
		require.Error(t, err)
	})
}

func TestSyncStatusString(t *testing.T) {
	require.Equal(t, "synced", branch.StatusSynced.String())
	require.Equal(t, "local only", branch.StatusLocalOnly.String())
	require.Equal(t, "ahead", branch.StatusAhead.String())
	require.Equal(t, "behind", branch.StatusBehind.String())
	require.Equal(t, "diverged", branch.StatusDiverged.String())
}
