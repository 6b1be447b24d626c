package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"
)

// GitRepo is a throwaway repository on disk for integration tests. Setup
// shells out to git; assertions read the repository with go-git so they
// cannot be fooled by a broken runner under test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a repository with a deterministic config in the
// given directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.runGit("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGit("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *GitRepo) runGit(args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", r.Dir}, args...)...)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %v failed: %w\n%s", args, err, out)
	}
	return nil
}

// CommitFile writes content to a file and commits it.
func (r *GitRepo) CommitFile(name, content, message string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	if err := r.runGit("add", name); err != nil {
		return err
	}
	return r.runGit("commit", "-m", message)
}

// CreateBranch creates a branch at HEAD without switching to it.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGit("branch", name)
}

// Checkout switches to a branch.
func (r *GitRepo) Checkout(name string) error {
	return r.runGit("checkout", name)
}

// WriteFile writes a file without committing, dirtying the working tree.
func (r *GitRepo) WriteFile(name, content string) error {
	return os.WriteFile(filepath.Join(r.Dir, name), []byte(content), 0644)
}

func (r *GitRepo) open(t *testing.T) *gogit.Repository {
	t.Helper()
	repo, err := gogit.PlainOpen(r.Dir)
	require.NoError(t, err, "failed to open repository")
	return repo
}

// ExpectCurrentBranch asserts the checked-out branch name.
func (r *GitRepo) ExpectCurrentBranch(t *testing.T, expected string) {
	t.Helper()
	head, err := r.open(t).Head()
	require.NoError(t, err, "failed to read HEAD")
	require.Equal(t, expected, head.Name().Short())
}

// ExpectBranchExists asserts that a local branch exists.
func (r *GitRepo) ExpectBranchExists(t *testing.T, name string) {
	t.Helper()
	_, err := r.open(t).Reference(plumbing.NewBranchReferenceName(name), true)
	require.NoError(t, err, "expected branch %s to exist", name)
}

// ExpectBranchMissing asserts that a local branch does not exist.
func (r *GitRepo) ExpectBranchMissing(t *testing.T, name string) {
	t.Helper()
	_, err := r.open(t).Reference(plumbing.NewBranchReferenceName(name), true)
	require.Error(t, err, "expected branch %s to be absent", name)
}
