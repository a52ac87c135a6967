package approval

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/alan/github-pr/cmd"
)

// MatchAuthors returns the authors of comments whose body contains a match for pattern, most recent first
func MatchAuthors(comments []cmd.Comment, pattern string) ([]string, error) {
	return matchAuthors(comments, pattern, func(cmd.Comment) bool { return true })
}

// FreshAuthors is MatchAuthors restricted to unedited comments created at or after since
func FreshAuthors(comments []cmd.Comment, pattern string, since time.Time) ([]string, error) {
	return matchAuthors(comments, pattern, func(c cmd.Comment) bool {
		return !c.CreatedAt.Before(since) && c.Fresh()
	})
}

func matchAuthors(comments []cmd.Comment, pattern string, eligible func(cmd.Comment) bool) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	var authors []string
	for i := len(comments) - 1; i >= 0; i-- {
		comment := comments[i]
		if !eligible(comment) || !re.MatchString(comment.Body) {
			continue
		}
		authors = append(authors, comment.User)
	}
	return authors, nil
}

// Check runs the conditional merge gate: fresh merge comments posted since the given time,
// then the policy. It fails with ErrNoMergeCommentFound before any rule when no comment qualifies.
func Check(comments []cmd.Comment, policy Policy, owner string, since time.Time) ([]string, error) {
	candidates, err := FreshAuthors(comments, policy.MergeComment, since)
	if err != nil {
		return nil, err
	}

	slog.Debug("Fresh merge comments", "pattern", policy.MergeComment, "since", since, "authors", candidates)
	if len(candidates) == 0 {
		return nil, ErrNoMergeCommentFound
	}

	return Evaluate(candidates, policy, owner)
}
