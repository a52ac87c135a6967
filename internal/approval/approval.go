// Package approval decides whether a pull request has been approved for merge by its comment history.
package approval

import (
	"fmt"
	"log/slog"
	"slices"
)

// Policy is the set of authorization rules applied to merge comment authors.
// Every enabled rule narrows the candidate set; an empty set fails the evaluation.
type Policy struct {
	NonOwnerOnly        bool
	ApprovedMergers     []string
	ApprovedMergersFile string // Empty disables the file rule
	MergeComment        string
}

// Enabled reports whether any authorization rule is switched on
func (p Policy) Enabled() bool {
	return p.NonOwnerOnly || p.ApprovedMergersFile != "" || len(p.ApprovedMergers) > 0
}

// Evaluate applies the policy to the candidate logins (most recent first) and returns the surviving approvers.
// Rules run in a fixed order: owner exclusion, mergers file, inline mergers. The first rule
// that empties the set stops the evaluation. With no rule enabled the candidates are returned unchanged.
func Evaluate(candidates []string, policy Policy, owner string) ([]string, error) {
	approvers := candidates

	if policy.NonOwnerOnly {
		approvers = excludeOwner(owner, approvers)
		if len(approvers) == 0 {
			return nil, fmt.Errorf("%w - Owner: %s", ErrOwnerCannotMergeOwnCode, owner)
		}
		slog.Debug("Owner exclusion applied", "owner", owner, "remaining", approvers)
	}

	if policy.ApprovedMergersFile != "" {
		allowed, err := LoadMergersFile(policy.ApprovedMergersFile)
		if err != nil {
			return nil, err
		}
		approvers, err = keepApproved(allowed, approvers)
		if err != nil {
			return nil, err
		}
		slog.Debug("Approved mergers file applied", "path", policy.ApprovedMergersFile, "remaining", approvers)
	}

	if len(policy.ApprovedMergers) > 0 {
		var err error
		approvers, err = keepApproved(policy.ApprovedMergers, approvers)
		if err != nil {
			return nil, err
		}
		slog.Debug("Approved mergers list applied", "remaining", approvers)
	}

	return approvers, nil
}

// excludeOwner drops every candidate equal to the owner
func excludeOwner(owner string, candidates []string) []string {
	var remaining []string
	for _, login := range candidates {
		if login != owner {
			remaining = append(remaining, login)
		}
	}
	return remaining
}

// keepApproved keeps the candidates present in the allowlist, in candidate order
func keepApproved(allowed, candidates []string) ([]string, error) {
	var remaining []string
	for _, login := range candidates {
		if slices.Contains(allowed, login) {
			remaining = append(remaining, login)
		}
	}
	if len(remaining) == 0 {
		return nil, fmt.Errorf("%w - Approved mergers: %v", ErrNoApprovedMergersFound, allowed)
	}
	return remaining, nil
}
