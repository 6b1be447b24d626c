package branch

// SyncStatus classifies how a local branch relates to its remote-tracking
// counterpart.
type SyncStatus int

const (
	// StatusSynced means local and remote point at the same commit.
	StatusSynced SyncStatus = iota
	// StatusLocalOnly means there is no usable remote counterpart.
	StatusLocalOnly
	// StatusAhead means the local branch has commits the remote lacks.
	StatusAhead
	// StatusBehind means the remote has commits the local branch lacks.
	StatusBehind
	// StatusDiverged means both sides have commits the other lacks.
	StatusDiverged
)

func (s SyncStatus) String() string {
	switch s {
	case StatusSynced:
		return "synced"
	case StatusLocalOnly:
		return "local only"
	case StatusAhead:
		return "ahead"
	case StatusBehind:
		return "behind"
	case StatusDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// AncestorQuerier is the slice of the git facade Classify needs.
type AncestorQuerier interface {
	RefExists(ref string) (bool, error)
	CommitID(ref string) (string, error)
	MergeBase(commit1, commit2 string) (string, error)
}

// Classify computes the sync status of a local branch against its
// remote-tracking counterpart, together with a short display note. The result
// is computed fresh on every call and is advisory display information: a
// failing common-ancestor query (unrelated histories) degrades to LocalOnly
// rather than failing the caller.
func Classify(g AncestorQuerier, remote, localBranch, localID string) (SyncStatus, string, error) {
	remoteRef := RemoteTrackingName(remote, localBranch)

	exists, err := g.RefExists(remoteRef)
	if err != nil {
		return StatusLocalOnly, "", err
	}
	if !exists {
		return StatusLocalOnly, "", nil
	}

	remoteID, err := g.CommitID(remoteRef)
	if err != nil {
		return StatusLocalOnly, "", err
	}
	if remoteID == "" {
		return StatusLocalOnly, "", nil
	}

	if localID == remoteID {
		return StatusSynced, "", nil
	}

	base, err := g.MergeBase(localID, remoteID)
	if err != nil {
		return StatusLocalOnly, "", nil
	}

	switch base {
	case remoteID:
		return StatusAhead, "needs push", nil
	case localID:
		return StatusBehind, "needs pull", nil
	default:
		return StatusDiverged, "diverged", nil
	}
}
