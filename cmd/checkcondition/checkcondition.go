// Package checkcondition implements the check-condition command, which evaluates the merge gate without merging.
package checkcondition

import (
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/internal/approval"
	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// CheckConditionCommand encapsulates the check-condition command with common functionality
type CheckConditionCommand struct {
	commands.BaseCommand
	commands.PolicyFlags
	Number int
}

// NewCheckConditionCmd creates the check-condition command
func NewCheckConditionCmd(globals *commands.GlobalOptions) *cobra.Command {
	checkCmd := &CheckConditionCommand{}

	cobraCmd := &cobra.Command{
		Use:   "check-condition",
		Short: "Check whether a pull request is approved for merge",
		Long: `Check the merge conditions of a pull request without merging it.

Only merge comments posted after the most recent commit and never edited
count. The approvers are printed one per line; the command fails when the
conditions are not met.

Approved mergers are given comma separated or by repeating the flag:
--condition-approved-mergers bob,carol or
--condition-approved-mergers bob --condition-approved-mergers carol.

Examples:
  github-pr -r dataxu/app check-condition -n 12
  github-pr -r dataxu/app check-condition -n 12 --condition-non-owner-merger --condition-approved-mergers bob,carol`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			checkCmd.Globals = globals
			if err := checkCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := commands.RequireFields(commands.Required("number", checkCmd.Number > 0)); err != nil {
				return err
			}
			if err := checkCmd.Connect(); err != nil {
				return err
			}
			return checkCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&checkCmd.Number, "number", "n", 0, "Pull request number")
	checkCmd.PolicyFlags.Bind(cobraCmd)

	return cobraCmd
}

// Run executes the check-condition command
func (cc *CheckConditionCommand) Run() error {
	pr, err := cc.Service.GetPR(cc.Context, cc.Number)
	if err != nil {
		return err
	}

	since, err := cc.Service.LastCommitTime(cc.Context, pr.Number)
	if err != nil {
		return err
	}

	comments, err := cc.Service.ListComments(cc.Context, pr.Number, &since)
	if err != nil {
		return err
	}

	approvers, err := approval.Check(comments, cc.Policy(cc.Settings), pr.Owner, since)
	if err != nil {
		slog.Info("Merge condition not met", "pr", pr.Number, "kind", approval.KindOf(err))
		return fmt.Errorf("merge condition not met for PR #%d: %w", pr.Number, err)
	}

	for _, login := range approvers {
		fmt.Fprintln(cc.Out, login)
	}
	cc.PrintRateLimit()
	return nil
}
