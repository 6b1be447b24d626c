package git

import (
	goerrors "errors"
	"strings"

	"ezgit.dev/ezgit/internal/errors"
)

// Git is a typed facade over a Runner. Each method maps to exactly one git
// invocation; nothing is cached between calls.
type Git struct {
	r Runner
}

// New creates a Git facade over the given runner.
func New(r Runner) *Git {
	return &Git{r: r}
}

// CurrentBranch returns the short name of the checked-out branch, or the
// empty string when HEAD is detached.
func (g *Git) CurrentBranch() (string, error) {
	out, err := g.r.Output("symbolic-ref", "--short", "-q", "HEAD")
	if err != nil {
		// With -q, a detached HEAD exits 1 without printing anything.
		var cmdErr *errors.GitCommandError
		if goerrors.As(err, &cmdErr) && cmdErr.ExitCode == 1 && cmdErr.Stderr == "" {
			return "", nil
		}
		return "", err
	}
	if out == "HEAD" {
		return "", nil
	}
	return out, nil
}

// RefExists reports whether the given ref resolves, quietly. Non-existence
// is a normal answer, never an error.
func (g *Git) RefExists(ref string) (bool, error) {
	return g.r.Succeeds("rev-parse", "--verify", "--quiet", ref)
}

// CommitID resolves a ref to its commit id.
func (g *Git) CommitID(ref string) (string, error) {
	return g.r.Output("rev-parse", ref)
}

// MergeBase returns the best common ancestor of two commits. It fails for
// unrelated histories; callers decide whether that matters.
func (g *Git) MergeBase(commit1, commit2 string) (string, error) {
	return g.r.Output("merge-base", commit1, commit2)
}

// StatusPorcelain returns the machine-parsable working-tree status. An empty
// result means the tree is clean.
func (g *Git) StatusPorcelain() (string, error) {
	return g.r.Output("status", "--porcelain")
}

// HasUncommittedChanges reports whether the working tree is dirty.
func (g *Git) HasUncommittedChanges() (bool, error) {
	out, err := g.StatusPorcelain()
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// LocalBranches lists local branch names.
func (g *Git) LocalBranches() ([]string, error) {
	out, err := g.r.Output("branch", "--no-color")
	if err != nil {
		return nil, err
	}
	return parseBranchList(out), nil
}

// AllBranches lists local and remote-tracking branch names. Remote-tracking
// names keep their "<remote>/<branch>" form; symbolic entries like
// "origin/HEAD -> origin/main" are skipped.
func (g *Git) AllBranches() ([]string, error) {
	out, err := g.r.Output("branch", "--all", "--no-color")
	if err != nil {
		return nil, err
	}
	return parseBranchList(out), nil
}

// parseBranchList turns git branch porcelain output into plain names.
func parseBranchList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "* "))
		name = strings.TrimPrefix(name, "remotes/")
		if name == "" || strings.Contains(name, "->") || strings.HasSuffix(name, "/HEAD") {
			continue
		}
		names = append(names, name)
	}
	return names
}

// CreateBranch creates a local branch at HEAD without switching to it.
func (g *Git) CreateBranch(name string) error {
	return g.r.Run("branch", name)
}

// CreateBranchFrom creates a local branch at the tip of the given source ref.
func (g *Git) CreateBranchFrom(name, source string) error {
	return g.r.Run("branch", name, source)
}

// DeleteLocalBranch deletes a local branch (refuses unmerged branches, as
// git branch -d does).
func (g *Git) DeleteLocalBranch(name string) error {
	return g.r.Run("branch", "-d", name)
}

// Checkout switches to an existing branch.
func (g *Git) Checkout(ref string) error {
	return g.r.Run("checkout", ref)
}

// CheckoutNew creates a branch from the current state and switches to it.
func (g *Git) CheckoutNew(name string) error {
	return g.r.Run("checkout", "-b", name)
}

// CheckoutTrack creates a local branch tracking the given remote-tracking
// ref and switches to it.
func (g *Git) CheckoutTrack(remoteRef string) error {
	return g.r.Run("checkout", "--track", remoteRef)
}

// Merge merges the named ref into the current branch and reports whether the
// merge completed. A false result usually means conflicts.
func (g *Git) Merge(ref string) (bool, error) {
	return g.r.Succeeds("merge", ref)
}

// Pull pulls a branch from a remote and reports whether the pull completed.
// A false result usually means conflicts.
func (g *Git) Pull(remote, branch string) (bool, error) {
	return g.r.Succeeds("pull", remote, branch)
}

// PushUpstream pushes a branch and sets up upstream tracking.
func (g *Git) PushUpstream(remote, branch string) error {
	return g.r.Run("push", "-u", remote, branch)
}

// PushDelete deletes a branch on the remote.
func (g *Git) PushDelete(remote, branch string) error {
	return g.r.Run("push", remote, "--delete", branch)
}

// FetchPrune fetches from the remote and prunes stale remote-tracking refs.
func (g *Git) FetchPrune(remote string) error {
	return g.r.Run("fetch", remote, "--prune")
}

// StageAll stages every change in the working tree.
func (g *Git) StageAll() error {
	return g.r.Run("add", "-A")
}

// Commit records the staged changes with the given message.
func (g *Git) Commit(message string) error {
	return g.r.Run("commit", "-m", message)
}

// DiscardChanges throws away all uncommitted changes. Irreversible.
func (g *Git) DiscardChanges() error {
	return g.r.Run("reset", "--hard", "HEAD")
}

// UndoLastCommit resets the current branch to its parent commit. With hard
// set, the commit's changes are discarded from the working tree as well.
func (g *Git) UndoLastCommit(hard bool) error {
	if hard {
		return g.r.Run("reset", "--hard", "HEAD~")
	}
	return g.r.Run("reset", "HEAD~")
}

// Init initializes a repository in the current directory.
func (g *Git) Init() error {
	return g.r.Run("init")
}

// RemoteAdd registers a remote under the given name.
func (g *Git) RemoteAdd(remote, url string) error {
	return g.r.Run("remote", "add", remote, url)
}

// RemoteSetURL changes the URL of an existing remote.
func (g *Git) RemoteSetURL(remote, url string) error {
	return g.r.Run("remote", "set-url", remote, url)
}

// RemoteRemove removes a remote.
func (g *Git) RemoteRemove(remote string) error {
	return g.r.Run("remote", "remove", remote)
}

// RemoteURL returns the URL of the named remote, or the empty string when
// the remote is not configured.
func (g *Git) RemoteURL(remote string) (string, error) {
	out, err := g.r.Output("remote", "get-url", remote)
	if err != nil {
		var cmdErr *errors.GitCommandError
		if goerrors.As(err, &cmdErr) {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// ShowBranchTree renders the commit graph as a topologically ordered listing.
func (g *Git) ShowBranchTree() (string, error) {
	return g.r.Output("show-branch", "--list", "--topo-order")
}
