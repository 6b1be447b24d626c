package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/branch"
)

func TestStyleHelpers(t *testing.T) {
	t.Run("branch names keep their text in every state", func(t *testing.T) {
		require.Contains(t, ColorBranchName("main", branch.StatusSynced, true), "main")
		require.Contains(t, ColorBranchName("feature", branch.StatusSynced, false), "feature")
		require.Contains(t, ColorBranchName("feature", branch.StatusDiverged, false), "feature")
	})

	t.Run("emphasis and notes keep their text", func(t *testing.T) {
		require.Contains(t, ColorEmphasis("feature"), "feature")
		require.Contains(t, ColorNote("needs push"), "needs push")
		require.Contains(t, ColorDirtyMarker(), "*")
	})
}
