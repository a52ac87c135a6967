package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
	"github.com/google/go-github/v57/github"
)

// NoStatus is reported when the most recent commit carries no status
const NoStatus = "none"

// LatestStatuses returns the statuses of the most recent commit of a PR, newest first
func (c *Client) LatestStatuses(ctx context.Context, number int) ([]cmd.CommitStatus, error) {
	commit, err := c.latestCommit(ctx, number)
	if err != nil {
		return nil, err
	}

	sha := commit.GetSHA()
	statuses, err := paginatedList(func(page int) ([]*github.RepoStatus, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing commit statuses", "org", c.org, "repo", c.repo, "sha", sha, "page", page)
		return c.client.Repositories.ListStatuses(ctx, c.org, c.repo, sha, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses for commit %s: %w", sha, err)
	}

	result := make([]cmd.CommitStatus, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, toCommitStatus(s))
	}
	return result, nil
}

// SummarizeStatus returns the state of the newest status, or NoStatus
func SummarizeStatus(statuses []cmd.CommitStatus) string {
	if len(statuses) == 0 {
		return NoStatus
	}
	return statuses[0].State
}
