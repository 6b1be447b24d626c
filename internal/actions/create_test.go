package actions_test

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/actions"
	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/testhelpers"
)

func TestCreate(t *testing.T) {
	t.Run("creates the branch and skips push when no remote is configured", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		p := &testhelpers.FakePrompter{}
		ctx := testhelpers.NewTestContext(r, p)

		err := actions.Create(ctx, actions.CreateOptions{Name: "feature-x"})
		require.NoError(t, err)
		require.True(t, r.Called("branch", "feature-x"))
		require.Empty(t, p.Messages)
	})

	t.Run("rejects an existing name before any side effect", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Statuses["rev-parse --verify --quiet taken"] = true
		ctx := testhelpers.NewTestContext(r, &testhelpers.FakePrompter{})

		err := actions.Create(ctx, actions.CreateOptions{Name: "taken"})
		require.Error(t, err)
		require.True(t, goerrors.Is(err, errors.ErrBranchExists))
		require.False(t, r.Called("branch", "taken"))
	})

	t.Run("prompts for the name when none is given", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		p := &testhelpers.FakePrompter{Inputs: []string{"from-prompt"}}
		ctx := testhelpers.NewTestContext(r, p)

		err := actions.Create(ctx, actions.CreateOptions{})
		require.NoError(t, err)
		require.True(t, r.Called("branch", "from-prompt"))
	})

	t.Run("pushes with tracking when the user accepts", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["remote get-url origin"] = "git@github.com:tester/demo.git"
		p := &testhelpers.FakePrompter{Confirms: []bool{true}}
		ctx := testhelpers.NewTestContext(r, p)

		err := actions.Create(ctx, actions.CreateOptions{Name: "feature-x"})
		require.NoError(t, err)
		require.True(t, r.Called("checkout", "feature-x"))
		require.True(t, r.Called("push", "-u", "origin", "feature-x"))
	})
}
