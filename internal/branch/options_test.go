package branch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/git"
	"ezgit.dev/ezgit/testhelpers"
)

func TestSelectChoices(t *testing.T) {
	t.Run("labels local and remote sides and sorts by display", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["branch --all --no-color"] = `* main
  feature
  remotes/origin/main
  remotes/origin/stale
`

		choices, err := branch.SelectChoices(git.New(r), "origin")
		require.NoError(t, err)
		require.Equal(t, []branch.Choice{
			{Display: "feature (local)", Value: "feature"},
			{Display: "main (local)", Value: "main"},
			{Display: "main (origin)", Value: "origin/main"},
			{Display: "stale (origin)", Value: "origin/stale"},
		}, choices)
	})

	t.Run("symbolic HEAD entries are skipped", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["branch --all --no-color"] = `* main
  remotes/origin/HEAD -> origin/main
  remotes/origin/main
`

		choices, err := branch.SelectChoices(git.New(r), "origin")
		require.NoError(t, err)
		require.Len(t, choices, 2)
	})

	t.Run("duplicate names are deduplicated", func(t *testing.T) {
		r := testhelpers.NewFakeRunner()
		r.Outputs["branch --all --no-color"] = `  main
  main
`

		choices, err := branch.SelectChoices(git.New(r), "origin")
		require.NoError(t, err)
		require.Len(t, choices, 1)
	})
}

func TestExclude(t *testing.T) {
	choices := []branch.Choice{
		{Display: "feature (local)", Value: "feature"},
		{Display: "main (local)", Value: "main"},
		{Display: "main (origin)", Value: "origin/main"},
	}

	kept := branch.Exclude(choices, "main", "origin/main")
	require.Equal(t, []branch.Choice{
		{Display: "feature (local)", Value: "feature"},
	}, kept)
}
