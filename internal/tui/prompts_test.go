package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/branch"
)

func TestFilterChoices(t *testing.T) {
	choices := []branch.Choice{
		{Display: "feature (local)", Value: "feature"},
		{Display: "feature (origin)", Value: "origin/feature"},
		{Display: "main (local)", Value: "main"},
	}

	t.Run("empty filter keeps the original order", func(t *testing.T) {
		require.Equal(t, choices, FilterChoices("", choices))
	})

	t.Run("matches against the display label", func(t *testing.T) {
		filtered := FilterChoices("main", choices)
		require.Len(t, filtered, 1)
		require.Equal(t, "main", filtered[0].Value)
	})

	t.Run("fuzzy matching tolerates gaps", func(t *testing.T) {
		filtered := FilterChoices("ftr", choices)
		require.Len(t, filtered, 2)
		for _, c := range filtered {
			require.Contains(t, c.Display, "feature")
		}
	})

	t.Run("no match yields an empty result", func(t *testing.T) {
		require.Empty(t, FilterChoices("zzz", choices))
	})
}

func TestInteractiveEnvOverride(t *testing.T) {
	t.Setenv("EZGIT_NO_INTERACTIVE", "1")
	require.False(t, Interactive())
	require.ErrorIs(t, checkInteractiveAllowed(), ErrInteractiveDisabled)
}
