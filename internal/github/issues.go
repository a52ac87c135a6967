package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
)

// PairOptions selects the extra data fetched for every pair
type PairOptions struct {
	Comments bool // Fetch the issue comments
	Statuses bool // Fetch the statuses of the most recent commit
}

// GetIssue fetches the issue side of a PR, used for labels and comments
func (c *Client) GetIssue(ctx context.Context, number int) (*cmd.Issue, error) {
	slog.Debug("GitHub API: Getting issue", "org", c.org, "repo", c.repo, "issue", number)
	issue, _, err := c.client.Issues.Get(ctx, c.org, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue #%d: %w", number, err)
	}

	result := toIssue(issue)
	return &result, nil
}

// SetLabels replaces all labels of an issue
func (c *Client) SetLabels(ctx context.Context, number int, labels []string) error {
	slog.Debug("GitHub API: Replacing labels", "org", c.org, "repo", c.repo, "issue", number, "labels", labels)
	if _, _, err := c.client.Issues.ReplaceLabelsForIssue(ctx, c.org, c.repo, number, labels); err != nil {
		return fmt.Errorf("failed to set labels on #%d: %w", number, err)
	}
	return nil
}

// ListPairs fetches every open PR together with its issue, and optionally its comments and latest statuses
func (c *Client) ListPairs(ctx context.Context, opts PairOptions) ([]cmd.Pair, error) {
	prs, err := c.ListPRs(ctx)
	if err != nil {
		return nil, err
	}

	pairs := make([]cmd.Pair, 0, len(prs))
	for _, pr := range prs {
		issue, err := c.GetIssue(ctx, pr.Number)
		if err != nil {
			return nil, err
		}

		if opts.Comments {
			comments, err := c.ListComments(ctx, pr.Number, nil)
			if err != nil {
				return nil, err
			}
			issue.Comments = comments
		}

		pair := cmd.Pair{PR: pr, Issue: *issue}
		if opts.Statuses {
			statuses, err := c.LatestStatuses(ctx, pr.Number)
			if err != nil {
				return nil, err
			}
			pair.Statuses = statuses
		}

		pairs = append(pairs, pair)
	}

	return pairs, nil
}
