package actions_test

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/testhelpers"
)

func TestRepoCreate(t *testing.T) {
	t.Run("creates the repository and registers the remote", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		gh := &testhelpers.FakeGitHub{CloneURL: "https://github.com/tester/demo.git"}
		ctx := testhelpers.NewTestContext(r, &testhelpers.FakePrompter{})
		ctx.GitHub = gh

		err := actions.RepoCreate(ctx, actions.RepoCreateOptions{Name: "demo", Private: true})
		require.NoError(t, err)
		require.Equal(t, "demo", gh.CreatedName)
		require.True(t, gh.CreatedPrivate)
		require.True(t, r.Called("remote", "add", "origin", "https://github.com/tester/demo.git"))
	})

	t.Run("fails without a token", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		ctx := testhelpers.NewTestContext(r, &testhelpers.FakePrompter{})

		err := actions.RepoCreate(ctx, actions.RepoCreateOptions{Name: "demo"})
		require.Error(t, err)

		var verr *errors.ValidationError
		require.True(t, goerrors.As(err, &verr))
	})

	t.Run("refuses when a remote is already configured", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "https://github.com/tester/other.git"
		ctx := testhelpers.NewTestContext(r, &testhelpers.FakePrompter{})
		ctx.GitHub = &testhelpers.FakeGitHub{}

		err := actions.RepoCreate(ctx, actions.RepoCreateOptions{Name: "demo"})
		require.Error(t, err)
	})
}

func TestRepoDelete(t *testing.T) {
	t.Run("deletes after both confirmations match", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "git@github.com:tester/demo.git"
		gh := &testhelpers.FakeGitHub{}
		p := &testhelpers.FakePrompter{
			Confirms: []bool{true},
			Inputs:   []string{"demo"},
		}
		ctx := testhelpers.NewTestContext(r, p)
		ctx.GitHub = gh

		err := actions.RepoDelete(ctx)
		require.NoError(t, err)
		require.Equal(t, "tester", gh.DeletedOwner)
		require.Equal(t, "demo", gh.DeletedName)
		require.True(t, r.Called("remote", "remove", "origin"))
	})

	t.Run("a mismatched name deletes nothing", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "git@github.com:tester/demo.git"
		gh := &testhelpers.FakeGitHub{}
		p := &testhelpers.FakePrompter{
			Confirms: []bool{true},
			Inputs:   []string{"wrong"},
		}
		ctx := testhelpers.NewTestContext(r, p)
		ctx.GitHub = gh

		err := actions.RepoDelete(ctx)
		require.NoError(t, err)
		require.Empty(t, gh.DeletedName)
		require.False(t, r.Called("remote", "remove", "origin"))
	})
}

func TestRemoteAdd(t *testing.T) {
	t.Run("adds a remote when none exists", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		ctx := testhelpers.NewTestContext(r, &testhelpers.FakePrompter{})

		err := actions.RemoteAdd(ctx, "git@github.com:tester/demo.git")
		require.NoError(t, err)
		require.True(t, r.Called("remote", "add", "origin", "git@github.com:tester/demo.git"))
	})

	t.Run("replaces an existing remote only with approval", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "git@github.com:tester/old.git"
		p := &testhelpers.FakePrompter{Confirms: []bool{true}}
		ctx := testhelpers.NewTestContext(r, p)

		err := actions.RemoteAdd(ctx, "git@github.com:tester/new.git")
		require.NoError(t, err)
		require.True(t, r.Called("remote", "set-url", "origin", "git@github.com:tester/new.git"))
	})
}
