package tui

import (
	"github.com/charmbracelet/lipgloss"

	"ezgit.dev/ezgit/internal/branch"
)

var (
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	syncedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	outOfSyncStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dirtyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

// ColorBranchName colors a branch name by its sync status. The current
// branch gets its own color regardless of status.
func ColorBranchName(name string, status branch.SyncStatus, isCurrent bool) string {
	if isCurrent {
		return currentStyle.Render(name)
	}
	if status == branch.StatusSynced {
		return syncedStyle.Render(name)
	}
	return outOfSyncStyle.Render(name)
}

// ColorDirtyMarker renders the marker shown next to the current branch when
// the working tree has uncommitted changes.
func ColorDirtyMarker() string {
	return dirtyStyle.Render("*")
}

// ColorNote renders a dimmed display note such as "(needs push)".
func ColorNote(note string) string {
	return dimStyle.Render(note)
}

// ColorEmphasis renders a branch name referenced inside a message.
func ColorEmphasis(name string) string {
	return currentStyle.Render(name)
}
