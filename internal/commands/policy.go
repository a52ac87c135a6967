package commands

import (
	"log/slog"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/approval"
	"github.com/spf13/cobra"
)

// PolicyFlags holds the merge-condition flags shared by merge and check-condition
type PolicyFlags struct {
	MergeComment    string
	NonOwnerMerger  bool
	ApprovedMergers []string
	UseMergersFile  bool
	MergersFilePath string
}

// Bind registers the policy flags on a command
func (p *PolicyFlags) Bind(c *cobra.Command) {
	c.Flags().StringVar(&p.MergeComment, "mergecomment", "", "Comment pattern that approves a merge (default from settings, "+cmd.DefaultMergeComment+")")
	c.Flags().BoolVar(&p.NonOwnerMerger, "condition-non-owner-merger", false, "Stop the owner from approving their own PR")
	c.Flags().StringSliceVar(&p.ApprovedMergers, "condition-approved-mergers", nil, "Logins allowed to approve a merge, comma separated or repeated")
	c.Flags().BoolVar(&p.UseMergersFile, "condition-approved-mergers-file", false, "Check a file for the logins allowed to approve a merge")
	c.Flags().StringVar(&p.MergersFilePath, "approved-mergers-file-path", "", "Location of the approved mergers file (default from settings, "+cmd.DefaultMergersFile+")")
}

// Policy combines the flags with the settings into an authorization policy
func (p *PolicyFlags) Policy(settings *cmd.Settings) approval.Policy {
	policy := approval.Policy{
		NonOwnerOnly:    p.NonOwnerMerger,
		ApprovedMergers: p.ApprovedMergers,
		MergeComment:    StringOr(p.MergeComment, StringOr(settings.MergeComment, cmd.DefaultMergeComment)),
	}
	if p.UseMergersFile {
		policy.ApprovedMergersFile = StringOr(p.MergersFilePath, StringOr(settings.ApprovedMergersFilePath, cmd.DefaultMergersFile))
	}
	return policy
}

// AuthorizeMerge scans every comment of the pull request for the merge marker and applies the policy.
// A policy with no rule enabled authorizes unconditionally without fetching comments.
func (bc *BaseCommand) AuthorizeMerge(pr *cmd.PullRequest, policy approval.Policy) ([]string, error) {
	if !policy.Enabled() {
		return nil, nil
	}

	comments, err := bc.Service.ListComments(bc.Context, pr.Number, nil)
	if err != nil {
		return nil, err
	}

	candidates, err := approval.MatchAuthors(comments, policy.MergeComment)
	if err != nil {
		return nil, err
	}
	slog.Debug("Merge comment authors", "pr", pr.Number, "pattern", policy.MergeComment, "authors", candidates)

	return approval.Evaluate(candidates, policy, pr.Owner)
}
