package github

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan/github-pr/cmd"
	"github.com/google/go-github/v57/github"
)

// GetPR fetches a specific PR by number
func (c *Client) GetPR(ctx context.Context, number int) (*cmd.PullRequest, error) {
	slog.Debug("GitHub API: Getting PR", "org", c.org, "repo", c.repo, "pr", number)
	pr, _, err := c.client.PullRequests.Get(ctx, c.org, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	result := toPullRequest(pr)
	return &result, nil
}

// ListPRs fetches all open PRs of the repository
func (c *Client) ListPRs(ctx context.Context) ([]cmd.PullRequest, error) {
	return c.listPRs(ctx, &github.PullRequestListOptions{State: "open"})
}

// ListPRsForBranch fetches open PRs from head into base.
// Refs are compared client side so that head may be given without a fork owner.
func (c *Client) ListPRsForBranch(ctx context.Context, head, base string) ([]cmd.PullRequest, error) {
	prs, err := c.listPRs(ctx, &github.PullRequestListOptions{State: "open", Base: base})
	if err != nil {
		return nil, err
	}

	var matching []cmd.PullRequest
	for _, pr := range prs {
		if pr.Head.Ref == head && pr.Base.Ref == base {
			matching = append(matching, pr)
		}
	}
	return matching, nil
}

func (c *Client) listPRs(ctx context.Context, template *github.PullRequestListOptions) ([]cmd.PullRequest, error) {
	prs, err := paginatedList(func(page int) ([]*github.PullRequest, *github.Response, error) {
		opts := *template
		opts.ListOptions = github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing pull requests", "org", c.org, "repo", c.repo, "base", opts.Base, "state", opts.State, "page", page)
		return c.client.PullRequests.List(ctx, c.org, c.repo, &opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests: %w", err)
	}

	allPRs := make([]cmd.PullRequest, 0, len(prs))
	for _, pr := range prs {
		allPRs = append(allPRs, toPullRequest(pr))
	}
	return allPRs, nil
}

// ListPRsByLabels fetches the open PRs carrying all of the given labels
func (c *Client) ListPRsByLabels(ctx context.Context, labels []string) ([]cmd.PullRequest, error) {
	issues, err := paginatedList(func(page int) ([]*github.Issue, *github.Response, error) {
		opts := &github.IssueListByRepoOptions{
			State:  "open",
			Labels: labels,
			ListOptions: github.ListOptions{
				PerPage: 100,
				Page:    page,
			},
		}
		slog.Debug("GitHub API: Listing issues by label", "org", c.org, "repo", c.repo, "labels", labels, "page", page)
		return c.client.Issues.ListByRepo(ctx, c.org, c.repo, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issues with labels %v: %w", labels, err)
	}

	var prs []cmd.PullRequest
	for _, issue := range issues {
		if !issue.IsPullRequest() {
			continue
		}

		pr, err := c.GetPR(ctx, issue.GetNumber())
		if err != nil {
			return nil, err
		}
		prs = append(prs, *pr)
	}
	return prs, nil
}

// ListFiles returns the names of the files changed by a PR
func (c *Client) ListFiles(ctx context.Context, number int) ([]string, error) {
	files, err := paginatedList(func(page int) ([]*github.CommitFile, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing PR files", "org", c.org, "repo", c.repo, "pr", number, "page", page)
		return c.client.PullRequests.ListFiles(ctx, c.org, c.repo, number, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files for PR #%d: %w", number, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.GetFilename())
	}
	return names, nil
}

// latestCommit returns the most recent commit of a PR
func (c *Client) latestCommit(ctx context.Context, number int) (*github.RepositoryCommit, error) {
	commits, err := paginatedList(func(page int) ([]*github.RepositoryCommit, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing PR commits", "org", c.org, "repo", c.repo, "pr", number, "page", page)
		return c.client.PullRequests.ListCommits(ctx, c.org, c.repo, number, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for PR #%d: %w", number, err)
	}

	if len(commits) == 0 {
		return nil, fmt.Errorf("PR #%d has no commits", number)
	}

	// The API lists commits oldest first
	return commits[len(commits)-1], nil
}

// LastCommitTime returns the committer date of the most recent commit of a PR
func (c *Client) LastCommitTime(ctx context.Context, number int) (time.Time, error) {
	commit, err := c.latestCommit(ctx, number)
	if err != nil {
		return time.Time{}, err
	}
	return commit.GetCommit().GetCommitter().GetDate().Time, nil
}

// CreatePR creates a new pull request
func (c *Client) CreatePR(ctx context.Context, title, body, head, base string) (*cmd.PullRequest, error) {
	newPR := &github.NewPullRequest{
		Title: &title,
		Body:  &body,
		Head:  &head,
		Base:  &base,
	}

	slog.Debug("GitHub API: Creating PR", "org", c.org, "repo", c.repo, "head", head, "base", base)
	pr, _, err := c.client.PullRequests.Create(ctx, c.org, c.repo, newPR)
	if err != nil {
		return nil, fmt.Errorf("failed to create PR %s -> %s: %w", head, base, err)
	}

	result := toPullRequest(pr)
	return &result, nil
}

// EditPR changes the title and/or body of a PR
func (c *Client) EditPR(ctx context.Context, number int, edit cmd.PREdit) error {
	update := &github.PullRequest{}
	if edit.Title != "" {
		update.Title = github.String(edit.Title)
	}
	if edit.Body != "" {
		update.Body = github.String(edit.Body)
	}

	slog.Debug("GitHub API: Editing PR", "org", c.org, "repo", c.repo, "pr", number)
	if _, _, err := c.client.PullRequests.Edit(ctx, c.org, c.repo, number, update); err != nil {
		return fmt.Errorf("failed to edit PR #%d: %w", number, err)
	}
	return nil
}

// ClosePR closes a PR without merging it
func (c *Client) ClosePR(ctx context.Context, number int) error {
	update := &github.PullRequest{State: github.String(string(cmd.PRStateClosed))}

	slog.Debug("GitHub API: Closing PR", "org", c.org, "repo", c.repo, "pr", number)
	if _, _, err := c.client.PullRequests.Edit(ctx, c.org, c.repo, number, update); err != nil {
		return fmt.Errorf("failed to close PR #%d: %w", number, err)
	}
	return nil
}
