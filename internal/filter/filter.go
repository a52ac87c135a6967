package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/alan/github-pr/cmd"
)

// ErrInvalidPattern is returned when the comment filter is not a valid regular expression
var ErrInvalidPattern = errors.New("invalid comment filter pattern")

// Predicate reports whether a pair passes one filter pass
type Predicate func(pair cmd.Pair) bool

// Apply narrows pairs by every recognised key present in spec.
// Passes run in the order owner, label, status, comment, each on the previous pass's output.
func Apply(pairs []cmd.Pair, spec Spec) ([]cmd.Pair, error) {
	result := make([]cmd.Pair, 0, len(pairs))
	result = append(result, pairs...)

	if value, ok := spec[KeyOwner]; ok {
		result = keep(result, byOwner(value))
		slog.Debug("Applied owner filter", "owner", value, "remaining", len(result))
	}

	if value, ok := spec[KeyLabel]; ok {
		result = keep(result, byLabel(value))
		slog.Debug("Applied label filter", "label", value, "remaining", len(result))
	}

	if value, ok := spec[KeyStatus]; ok {
		result = keep(result, byStatus(value))
		slog.Debug("Applied status filter", "status", value, "remaining", len(result))
	}

	if value, ok := spec[KeyComment]; ok {
		predicate, err := byComment(value)
		if err != nil {
			return nil, err
		}
		result = keep(result, predicate)
		slog.Debug("Applied comment filter", "comment", value, "remaining", len(result))
	}

	return result, nil
}

// keep returns the pairs accepted by predicate, preserving order
func keep(pairs []cmd.Pair, predicate Predicate) []cmd.Pair {
	kept := make([]cmd.Pair, 0, len(pairs))
	for _, pair := range pairs {
		if predicate(pair) {
			kept = append(kept, pair)
		}
	}
	return kept
}

func byOwner(owner string) Predicate {
	return func(pair cmd.Pair) bool {
		return pair.PR.Owner == owner
	}
}

func byLabel(label string) Predicate {
	return func(pair cmd.Pair) bool {
		return pair.Issue.HasLabel(label)
	}
}

// byStatus matches against the statuses of the most recent commit only
func byStatus(state string) Predicate {
	return func(pair cmd.Pair) bool {
		for _, status := range pair.Statuses {
			if status.State == state {
				return true
			}
		}
		return false
	}
}

// byComment matches when any issue comment contains a match for pattern
func byComment(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}

	return func(pair cmd.Pair) bool {
		for _, comment := range pair.Issue.Comments {
			if re.MatchString(comment.Body) {
				return true
			}
		}
		return false
	}, nil
}
