package branch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/testhelpers"
)

func TestResolve(t *testing.T) {
	t.Run("plain input synthesizes the remote name", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Statuses["rev-parse --verify --quiet feature"] = true
		r.Statuses["rev-parse --verify --quiet origin/feature"] = false

		res, err := branch.Resolve(git.New(r), "origin", "feature")
		require.NoError(t, err)
		require.Equal(t, "feature", res.LocalName)
		require.Equal(t, "origin/feature", res.RemoteName)
		require.True(t, res.LocalExists)
		require.False(t, res.RemoteExists)
	})

	t.Run("remote-prefixed input strips the prefix for the local name", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Statuses["rev-parse --verify --quiet origin/feature"] = true

		res, err := branch.Resolve(git.New(r), "origin", "origin/feature")
		require.NoError(t, err)
		require.Equal(t, "feature", res.LocalName)
		require.Equal(t, "origin/feature", res.RemoteName)
		require.True(t, res.RemoteExists)
	})

	t.Run("remote-prefixed input never probes the local candidate", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Statuses["rev-parse --verify --quiet origin/feature"] = true

		res, err := branch.Resolve(git.New(r), "origin", "origin/feature")
		require.NoError(t, err)
		require.False(t, res.LocalExists)
		require.False(t, r.Called("rev-parse", "--verify", "--quiet", "feature"))
		require.Len(t, r.Calls, 1)
	})

	t.Run("plain input probes both candidates", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Statuses["rev-parse --verify --quiet feature"] = false
		r.Statuses["rev-parse --verify --quiet origin/feature"] = true

		res, err := branch.Resolve(git.New(r), "origin", "feature")
		require.NoError(t, err)
		require.False(t, res.LocalExists)
		require.True(t, res.RemoteExists)
		require.True(t, r.Called("rev-parse", "--verify", "--quiet", "feature"))
		require.True(t, r.Called("rev-parse", "--verify", "--quiet", "origin/feature"))
	})
}

func TestRemoteTrackingName(t *testing.T) {
	require.Equal(t, "origin/feature", branch.RemoteTrackingName("origin", "feature"))
}
