package github

import (
	"github.com/alan/github-pr/cmd"
	"github.com/google/go-github/v57/github"
)

// toPullRequest converts a go-github pull request into our read-only view
func toPullRequest(pr *github.PullRequest) cmd.PullRequest {
	return cmd.PullRequest{
		Number:         pr.GetNumber(),
		State:          cmd.ParsePRState(pr.GetState()),
		Owner:          pr.GetUser().GetLogin(),
		Title:          pr.GetTitle(),
		Body:           pr.GetBody(),
		MergeableState: pr.GetMergeableState(),
		HTMLURL:        pr.GetHTMLURL(),
		Base:           toBranchRef(pr.GetBase()),
		Head:           toBranchRef(pr.GetHead()),
	}
}

func toBranchRef(branch *github.PullRequestBranch) cmd.BranchRef {
	return cmd.BranchRef{
		Ref:       branch.GetRef(),
		SHA:       branch.GetSHA(),
		RepoOwner: branch.GetRepo().GetOwner().GetLogin(),
	}
}

func toIssue(issue *github.Issue) cmd.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return cmd.Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		Labels:        labels,
		IsPullRequest: issue.IsPullRequest(),
	}
}

func toComment(comment *github.IssueComment) cmd.Comment {
	return cmd.Comment{
		ID:        comment.GetID(),
		User:      comment.GetUser().GetLogin(),
		Body:      comment.GetBody(),
		CreatedAt: comment.GetCreatedAt().Time,
		UpdatedAt: comment.GetUpdatedAt().Time,
	}
}

func toCommitStatus(status *github.RepoStatus) cmd.CommitStatus {
	return cmd.CommitStatus{
		State:       status.GetState(),
		Context:     status.GetContext(),
		Description: status.GetDescription(),
	}
}
