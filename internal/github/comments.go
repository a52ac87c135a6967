package github

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan/github-pr/cmd"
	"github.com/google/go-github/v57/github"
)

// ListComments retrieves all comments for an issue, oldest first.
// When since is set only comments updated at or after that time are returned.
func (c *Client) ListComments(ctx context.Context, issueNumber int, since *time.Time) ([]cmd.Comment, error) {
	comments, err := paginatedList(func(page int) ([]*github.IssueComment, *github.Response, error) {
		opts := &github.IssueListCommentsOptions{
			Since: since,
			ListOptions: github.ListOptions{
				PerPage: 100,
				Page:    page,
			},
		}
		slog.Debug("GitHub API: Listing issue comments", "org", c.org, "repo", c.repo, "issue", issueNumber, "since", since, "page", page)
		return c.client.Issues.ListComments(ctx, c.org, c.repo, issueNumber, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issue comments: %w", err)
	}

	allComments := make([]cmd.Comment, 0, len(comments))
	for _, comment := range comments {
		allComments = append(allComments, toComment(comment))
	}
	return allComments, nil
}

// CreateComment creates a new comment on an issue
func (c *Client) CreateComment(ctx context.Context, issueNumber int, body string) (*cmd.Comment, error) {
	commentInput := &github.IssueComment{
		Body: github.String(body),
	}

	slog.Debug("GitHub API: Creating issue comment", "org", c.org, "repo", c.repo, "issue", issueNumber)
	comment, _, err := c.client.Issues.CreateComment(ctx, c.org, c.repo, issueNumber, commentInput)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	result := toComment(comment)
	return &result, nil
}
