// Package cmd defines core data structures shared by the github-pr commands and engines.
package cmd

import "time"

// PRState represents the state of a pull request
type PRState string

const (
	// PRStateOpen indicates the pull request is open
	PRStateOpen PRState = "open"
	// PRStateClosed indicates the pull request is closed (merged or not)
	PRStateClosed PRState = "closed"
)

// ParsePRState converts a string to PRState
func ParsePRState(s string) PRState {
	switch s {
	case "closed":
		return PRStateClosed
	default:
		return PRStateOpen
	}
}

// BranchRef identifies one side of a pull request
type BranchRef struct {
	Ref       string
	SHA       string
	RepoOwner string // Owner of the repository the branch lives in (differs from base for forks)
}

// PullRequest is a read-only view of a pull request
type PullRequest struct {
	Number         int
	State          PRState
	Owner          string
	Title          string
	Body           string
	MergeableState string
	HTMLURL        string
	Base           BranchRef
	Head           BranchRef
}

// Issue is the issue side of a pull request. It shares the pull request's number.
type Issue struct {
	Number        int
	Title         string
	Labels        []string
	Comments      []Comment // Oldest first, as delivered by the API
	IsPullRequest bool
}

// HasLabel reports whether the issue carries a label with exactly this name
func (i Issue) HasLabel(name string) bool {
	for _, label := range i.Labels {
		if label == name {
			return true
		}
	}
	return false
}

// Comment is a single issue comment
type Comment struct {
	ID        int64
	User      string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fresh reports whether the comment was never edited after posting
func (c Comment) Fresh() bool {
	return c.UpdatedAt.Equal(c.CreatedAt)
}

// CommitStatus is a status attached to a commit
type CommitStatus struct {
	State       string // success, failure, error or pending
	Context     string
	Description string
}

// Pair bundles a pull request with its issue and the statuses of its most recent commit
type Pair struct {
	PR       PullRequest
	Issue    Issue
	Statuses []CommitStatus
}

// RateLimit describes the remaining core API quota
type RateLimit struct {
	Remaining int
	Limit     int
}

// PREdit holds the fields to change on a pull request. Empty fields are left untouched.
type PREdit struct {
	Title string
	Body  string
}

// Empty reports whether the edit would change nothing
func (e PREdit) Empty() bool {
	return e.Title == "" && e.Body == ""
}
