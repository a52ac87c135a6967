package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// MergePR merges a pull request using the specified merge method
func (c *Client) MergePR(ctx context.Context, prNumber int, mergeMethod string) error {
	slog.Debug("GitHub API: Getting PR for merge", "org", c.org, "repo", c.repo, "pr", prNumber)
	pr, _, err := c.client.PullRequests.Get(ctx, c.org, c.repo, prNumber)
	if err != nil {
		return fmt.Errorf("failed to get PR #%d: %w", prNumber, err)
	}

	// Mergeable can be nil while GitHub is still computing it
	if pr.Mergeable != nil && !*pr.Mergeable {
		return fmt.Errorf("PR #%d is not mergeable (conflicts may exist)", prNumber)
	}

	mergeOptions := &github.PullRequestOptions{
		MergeMethod: mergeMethod,
	}
	if mergeMethod == "squash" {
		mergeOptions.CommitTitle = fmt.Sprintf("%s (#%d)", pr.GetTitle(), prNumber)
	}

	slog.Debug("GitHub API: Merging PR", "org", c.org, "repo", c.repo, "pr", prNumber, "method", mergeMethod)
	mergeResult, _, err := c.client.PullRequests.Merge(ctx, c.org, c.repo, prNumber, "", mergeOptions)
	if err != nil {
		return fmt.Errorf("failed to merge PR #%d: %w", prNumber, err)
	}

	if !mergeResult.GetMerged() {
		return fmt.Errorf("PR #%d merge was not successful: %s", prNumber, mergeResult.GetMessage())
	}

	return nil
}
