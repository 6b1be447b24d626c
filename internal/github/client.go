// Package github talks to the GitHub API for repository management.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// Client creates and deletes repositories on a hosting service.
type Client interface {
	// CreateRepo creates a repository under the authenticated user and
	// returns its clone URL.
	CreateRepo(ctx context.Context, name string, private bool) (string, error)

	// DeleteRepo deletes the named repository.
	DeleteRepo(ctx context.Context, owner, name string) error
}

// APIClient is a Client backed by the GitHub REST API.
type APIClient struct {
	client *gogithub.Client
}

// NewAPIClient wraps an existing GitHub API client.
func NewAPIClient(client *gogithub.Client) *APIClient {
	return &APIClient{client: client}
}

// NewClientFromEnv creates an authenticated client from EZGIT_GITHUB_TOKEN or
// GITHUB_TOKEN. It returns an error when neither is set.
func NewClientFromEnv(ctx context.Context) (*APIClient, error) {
	token := os.Getenv("EZGIT_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("no GitHub token found (set EZGIT_GITHUB_TOKEN or GITHUB_TOKEN)")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return NewAPIClient(gogithub.NewClient(tc)), nil
}

// CreateRepo implements Client.
func (c *APIClient) CreateRepo(ctx context.Context, name string, private bool) (string, error) {
	repo := &gogithub.Repository{
		Name:    gogithub.String(name),
		Private: gogithub.Bool(private),
	}

	created, _, err := c.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return "", fmt.Errorf("failed to create repository %s: %w", name, err)
	}
	return created.GetCloneURL(), nil
}

// DeleteRepo implements Client.
func (c *APIClient) DeleteRepo(ctx context.Context, owner, name string) error {
	if _, err := c.client.Repositories.Delete(ctx, owner, name); err != nil {
		return fmt.Errorf("failed to delete repository %s/%s: %w", owner, name, err)
	}
	return nil
}

// ParseOwnerRepo extracts the owner and repository name from a GitHub remote
// URL in either SSH or HTTPS form.
func ParseOwnerRepo(remoteURL string) (owner, repo string, err error) {
	path := remoteURL

	switch {
	case strings.HasPrefix(path, "git@"):
		// git@github.com:owner/repo.git
		_, after, found := strings.Cut(path, ":")
		if !found {
			return "", "", fmt.Errorf("unrecognized remote url: %s", remoteURL)
		}
		path = after
	case strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "http://"):
		// https://github.com/owner/repo.git
		path = strings.TrimPrefix(path, "https://")
		path = strings.TrimPrefix(path, "http://")
		_, after, found := strings.Cut(path, "/")
		if !found {
			return "", "", fmt.Errorf("unrecognized remote url: %s", remoteURL)
		}
		path = after
	default:
		return "", "", fmt.Errorf("unrecognized remote url: %s", remoteURL)
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("unrecognized remote url: %s", remoteURL)
	}
	return parts[0], parts[1], nil
}
