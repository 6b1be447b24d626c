package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/testhelpers"
)

func TestCurrentBranch(t *testing.T) {
	t.Run("returns the short branch name", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["symbolic-ref --short -q HEAD"] = "main"

		name, err := git.New(r).CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", name)
	})

	t.Run("detached HEAD is empty, not an error", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Errors["symbolic-ref --short -q HEAD"] = errors.NewGitCommandError(
			[]string{"symbolic-ref", "--short", "-q", "HEAD"}, 1, "", "")

		name, err := git.New(r).CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "", name)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Errors["symbolic-ref --short -q HEAD"] = errors.NewGitCommandError(
			[]string{"symbolic-ref", "--short", "-q", "HEAD"}, 128, "", "fatal: not a git repository")

		_, err := git.New(r).CurrentBranch()
		require.Error(t, err)
	})
}

func TestRemoteURL(t *testing.T) {
	t.Run("missing remote is empty, not an error", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Errors["remote get-url origin"] = errors.NewGitCommandError(
			[]string{"remote", "get-url", "origin"}, 2, "", "error: No such remote 'origin'")

		url, err := git.New(r).RemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "", url)
	})

	t.Run("configured remote returns its url", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "git@github.com:tester/demo.git"

		url, err := git.New(r).RemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "git@github.com:tester/demo.git", url)
	})
}

func TestAllBranches(t *testing.T) {
	r := testhelpers.NewFakeRunner()
	r.Outputs["branch --all --no-color"] = `  feature
* main
  remotes/origin/HEAD -> origin/main
  remotes/origin/feature
  remotes/origin/main
`

	names, err := git.New(r).AllBranches()
	require.NoError(t, err)
	require.Equal(t, []string{"feature", "main", "origin/feature", "origin/main"}, names)
}

func TestHasUncommittedChanges(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["status --porcelain"] = ""

		dirty, err := git.New(r).HasUncommittedChanges()
		require.NoError(t, err)
		require.False(t, dirty)
	})

	t.Run("dirty tree", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["status --porcelain"] = " M file.txt"

		dirty, err := git.New(r).HasUncommittedChanges()
		require.NoError(t, err)
		require.True(t, dirty)
	})
}

func TestUndoLastCommit(t *testing.T) {
	t.Run("soft keeps the changes", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		require.NoError(t, git.New(r).UndoLastCommit(false))
		require.True(t, r.Called("reset", "HEAD~"))
	})

	t.Run("hard discards them", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		require.NoError(t, git.New(r).UndoLastCommit(true))
		require.True(t, r.Called("reset", "--hard", "HEAD~"))
	})
}
