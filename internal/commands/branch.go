package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
)

var (
	// ErrNoBranchMatch is returned when no open pull request goes from head into base
	ErrNoBranchMatch = errors.New("no pull request found for branch")
	// ErrAmbiguousBranchMatch is the sentinel behind AmbiguousBranchMatchError
	ErrAmbiguousBranchMatch = errors.New("ambiguous branch match")
)

// AmbiguousBranchMatchError reports that more than one pull request matched a head/base pair.
// It is a warning: the matches are still returned.
type AmbiguousBranchMatchError struct {
	Head  string
	Base  string
	Count int
}

func (e *AmbiguousBranchMatchError) Error() string {
	return fmt.Sprintf("probable error, found %d pull(s) from %s -> %s (expected 1)", e.Count, e.Head, e.Base)
}

func (e *AmbiguousBranchMatchError) Unwrap() error {
	return ErrAmbiguousBranchMatch
}

// FindPRForBranch returns the open pull requests from head into base.
// Any count other than one comes back as an *AmbiguousBranchMatchError warning
// together with the matches, which may be empty.
func FindPRForBranch(ctx context.Context, service RepositoryService, head, base string) ([]cmd.PullRequest, error) {
	prs, err := service.ListPRsForBranch(ctx, head, base)
	if err != nil {
		return nil, err
	}

	if len(prs) == 1 {
		return prs, nil
	}
	if prs == nil {
		prs = []cmd.PullRequest{}
	}
	return prs, &AmbiguousBranchMatchError{Head: head, Base: base, Count: len(prs)}
}

// ResolveBranchPR picks the pull request for head/base. On an ambiguous match it warns,
// prints the candidates and proceeds with the first one. No match fails with ErrNoBranchMatch.
func (bc *BaseCommand) ResolveBranchPR(head, base string, printer *Printer) (*cmd.PullRequest, error) {
	prs, err := FindPRForBranch(bc.Context, bc.Service, head, base)
	var ambiguous *AmbiguousBranchMatchError
	if errors.As(err, &ambiguous) {
		if ambiguous.Count == 0 {
			return nil, fmt.Errorf("%w: %s -> %s", ErrNoBranchMatch, head, base)
		}
		slog.Warn("Multiple pull requests match branch", "head", head, "base", base, "count", ambiguous.Count)
		fmt.Fprintln(bc.Out, ambiguous.Error())
		printer.PrintPRs(prs)
	} else if err != nil {
		return nil, err
	}

	return &prs[0], nil
}
