// Package commandstest provides an in-memory RepositoryService for command tests.
package commandstest

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/github"
)

// MergeCall records one MergePR invocation
type MergeCall struct {
	Number int
	Method string
}

// CreatedPR records one CreatePR invocation
type CreatedPR struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// FakeService is a RepositoryService backed by maps. Errors keyed by method name are returned from that method.
type FakeService struct {
	PRs         map[int]cmd.PullRequest
	Issues      map[int]cmd.Issue
	Comments    map[int][]cmd.Comment
	Files       map[int][]string
	Statuses    map[int][]cmd.CommitStatus
	CommitTimes map[int]time.Time
	BranchPRs   []cmd.PullRequest
	LabelPRs    []cmd.PullRequest
	Limit       cmd.RateLimit
	Errors      map[string]error

	Merged          []MergeCall
	Labels          map[int][]string
	Edits           map[int]cmd.PREdit
	Closed          []int
	PostedComments  map[int][]string
	CreatedPRs      []CreatedPR
	CommentsSince   []*time.Time
	RequestedLabels [][]string
}

// NewFakeService returns an empty fake with all maps initialised
func NewFakeService() *FakeService {
	return &FakeService{
		PRs:            map[int]cmd.PullRequest{},
		Issues:         map[int]cmd.Issue{},
		Comments:       map[int][]cmd.Comment{},
		Files:          map[int][]string{},
		Statuses:       map[int][]cmd.CommitStatus{},
		CommitTimes:    map[int]time.Time{},
		Errors:         map[string]error{},
		Labels:         map[int][]string{},
		Edits:          map[int]cmd.PREdit{},
		PostedComments: map[int][]string{},
		Limit:          cmd.RateLimit{Remaining: 4999, Limit: 5000},
	}
}

// AddPR registers a pull request and its issue
func (f *FakeService) AddPR(pr cmd.PullRequest, labels ...string) {
	f.PRs[pr.Number] = pr
	f.Issues[pr.Number] = cmd.Issue{Number: pr.Number, Title: pr.Title, Labels: labels, IsPullRequest: true}
}

// Globals returns root options whose factory hands out this fake and whose settings are the defaults
func (f *FakeService) Globals() *commands.GlobalOptions {
	return &commands.GlobalOptions{
		Repo:  "test-org/test-repo",
		Token: "test-token",
		LoadSettings: func(string) (*cmd.Settings, error) {
			settings := cmd.DefaultSettings()
			return &settings, nil
		},
		NewService: func(context.Context, string, string, string, string) (commands.RepositoryService, error) {
			return f, nil
		},
	}
}

func (f *FakeService) fail(method string) error {
	return f.Errors[method]
}

func (f *FakeService) GetPR(_ context.Context, number int) (*cmd.PullRequest, error) {
	if err := f.fail("GetPR"); err != nil {
		return nil, err
	}
	pr, ok := f.PRs[number]
	if !ok {
		return nil, fmt.Errorf("failed to fetch PR #%d: not found", number)
	}
	return &pr, nil
}

func (f *FakeService) GetIssue(_ context.Context, number int) (*cmd.Issue, error) {
	if err := f.fail("GetIssue"); err != nil {
		return nil, err
	}
	issue, ok := f.Issues[number]
	if !ok {
		return nil, fmt.Errorf("failed to fetch issue #%d: not found", number)
	}
	if labels, ok := f.Labels[number]; ok {
		issue.Labels = labels
	}
	return &issue, nil
}

func (f *FakeService) ListComments(_ context.Context, number int, since *time.Time) ([]cmd.Comment, error) {
	f.CommentsSince = append(f.CommentsSince, since)
	if err := f.fail("ListComments"); err != nil {
		return nil, err
	}
	var result []cmd.Comment
	for _, c := range f.Comments[number] {
		if since == nil || !c.UpdatedAt.Before(*since) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *FakeService) ListPRsForBranch(_ context.Context, _, _ string) ([]cmd.PullRequest, error) {
	if err := f.fail("ListPRsForBranch"); err != nil {
		return nil, err
	}
	return f.BranchPRs, nil
}

func (f *FakeService) ListPairs(ctx context.Context, opts github.PairOptions) ([]cmd.Pair, error) {
	if err := f.fail("ListPairs"); err != nil {
		return nil, err
	}
	prs, _ := f.ListPRs(ctx)
	pairs := make([]cmd.Pair, 0, len(prs))
	for _, pr := range prs {
		pair := cmd.Pair{PR: pr, Issue: f.Issues[pr.Number]}
		if opts.Comments {
			pair.Issue.Comments = f.Comments[pr.Number]
		}
		if opts.Statuses {
			pair.Statuses = f.Statuses[pr.Number]
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ListPRs returns the registered pull requests ordered by number
func (f *FakeService) ListPRs(_ context.Context) ([]cmd.PullRequest, error) {
	if err := f.fail("ListPRs"); err != nil {
		return nil, err
	}
	prs := make([]cmd.PullRequest, 0, len(f.PRs))
	numbers := make([]int, 0, len(f.PRs))
	for number := range f.PRs {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)
	for _, number := range numbers {
		prs = append(prs, f.PRs[number])
	}
	return prs, nil
}

func (f *FakeService) ListPRsByLabels(_ context.Context, labels []string) ([]cmd.PullRequest, error) {
	f.RequestedLabels = append(f.RequestedLabels, labels)
	if err := f.fail("ListPRsByLabels"); err != nil {
		return nil, err
	}
	return f.LabelPRs, nil
}

func (f *FakeService) ListFiles(_ context.Context, number int) ([]string, error) {
	if err := f.fail("ListFiles"); err != nil {
		return nil, err
	}
	return f.Files[number], nil
}

func (f *FakeService) LastCommitTime(_ context.Context, number int) (time.Time, error) {
	if err := f.fail("LastCommitTime"); err != nil {
		return time.Time{}, err
	}
	return f.CommitTimes[number], nil
}

func (f *FakeService) LatestStatuses(_ context.Context, number int) ([]cmd.CommitStatus, error) {
	if err := f.fail("LatestStatuses"); err != nil {
		return nil, err
	}
	return f.Statuses[number], nil
}

func (f *FakeService) MergePR(_ context.Context, number int, method string) error {
	if err := f.fail("MergePR"); err != nil {
		return err
	}
	f.Merged = append(f.Merged, MergeCall{Number: number, Method: method})
	return nil
}

func (f *FakeService) SetLabels(_ context.Context, number int, labels []string) error {
	if err := f.fail("SetLabels"); err != nil {
		return err
	}
	f.Labels[number] = labels
	return nil
}

func (f *FakeService) EditPR(_ context.Context, number int, edit cmd.PREdit) error {
	if err := f.fail("EditPR"); err != nil {
		return err
	}
	f.Edits[number] = edit
	return nil
}

func (f *FakeService) ClosePR(_ context.Context, number int) error {
	if err := f.fail("ClosePR"); err != nil {
		return err
	}
	f.Closed = append(f.Closed, number)
	return nil
}

func (f *FakeService) CreateComment(_ context.Context, number int, body string) (*cmd.Comment, error) {
	if err := f.fail("CreateComment"); err != nil {
		return nil, err
	}
	f.PostedComments[number] = append(f.PostedComments[number], body)
	return &cmd.Comment{ID: int64(len(f.PostedComments[number])), Body: body}, nil
}

func (f *FakeService) CreatePR(_ context.Context, title, body, head, base string) (*cmd.PullRequest, error) {
	if err := f.fail("CreatePR"); err != nil {
		return nil, err
	}
	f.CreatedPRs = append(f.CreatedPRs, CreatedPR{Title: title, Body: body, Head: head, Base: base})
	pr := cmd.PullRequest{
		Number: 100 + len(f.CreatedPRs),
		State:  cmd.PRStateOpen,
		Title:  title,
		Body:   body,
		Base:   cmd.BranchRef{Ref: base, RepoOwner: "test-org"},
		Head:   cmd.BranchRef{Ref: head, RepoOwner: "test-org"},
	}
	f.AddPR(pr)
	return &pr, nil
}

func (f *FakeService) RateLimit(_ context.Context) (*cmd.RateLimit, error) {
	if err := f.fail("RateLimit"); err != nil {
		return nil, err
	}
	limit := f.Limit
	return &limit, nil
}

var _ commands.RepositoryService = (*FakeService)(nil)
