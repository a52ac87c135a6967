// Package merge implements the merge command, optionally gated by approval comments.
package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// MergeMethods lists the accepted --method values
var MergeMethods = []string{"merge", "squash", "rebase"}

// ErrInvalidMergeMethod is returned for a --method outside MergeMethods
var ErrInvalidMergeMethod = errors.New("invalid merge method")

// MergeCommand encapsulates the merge command with common functionality
type MergeCommand struct {
	commands.BaseCommand
	commands.PolicyFlags
	Number int
	Head   string
	Base   string
	Method string
}

// NewMergeCmd creates the merge command
func NewMergeCmd(globals *commands.GlobalOptions) *cobra.Command {
	mergeCmd := &MergeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a pull request",
		Long: `Merge a pull request selected by number or by head branch.

When any --condition flag is set, the comments of the pull request are
scanned for the merge comment (default :shipit:) and the merge only
happens if an author survives every enabled condition.

Approved mergers are given comma separated or by repeating the flag:
--condition-approved-mergers bob,carol or
--condition-approved-mergers bob --condition-approved-mergers carol.

Examples:
  github-pr -r dataxu/app merge -n 12
  github-pr -r dataxu/app merge --head fix-upload --method squash
  github-pr -r dataxu/app merge -n 12 --condition-non-owner-merger --condition-approved-mergers-file`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			mergeCmd.Globals = globals
			if err := mergeCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := mergeCmd.validate(); err != nil {
				return err
			}
			if err := mergeCmd.Connect(); err != nil {
				return err
			}
			return mergeCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&mergeCmd.Number, "number", "n", 0, "Pull request number")
	cobraCmd.Flags().StringVar(&mergeCmd.Head, "head", "", "Merge the pull request from this branch")
	cobraCmd.Flags().StringVar(&mergeCmd.Base, "base", "", "Base branch used with --head (default from settings, master)")
	cobraCmd.Flags().StringVar(&mergeCmd.Method, "method", "", "Merge method: merge, squash or rebase (default from settings, merge)")
	mergeCmd.PolicyFlags.Bind(cobraCmd)

	return cobraCmd
}

func (mc *MergeCommand) validate() error {
	if err := commands.RequireFields(commands.Required("number or head", mc.Number > 0 || mc.Head != "")); err != nil {
		return err
	}

	mc.Base = commands.StringOr(mc.Base, mc.Settings.Base)
	mc.Method = commands.StringOr(mc.Method, commands.StringOr(mc.Settings.MergeMethod, MergeMethods[0]))
	if !slices.Contains(MergeMethods, mc.Method) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidMergeMethod, mc.Method, strings.Join(MergeMethods, ", "))
	}
	return nil
}

// Run executes the merge command
func (mc *MergeCommand) Run() error {
	pr, err := mc.target()
	if err != nil {
		return err
	}

	approvers, err := mc.AuthorizeMerge(pr, mc.Policy(mc.Settings))
	if err != nil {
		return fmt.Errorf("PR #%d not merged: %w", pr.Number, err)
	}

	if err := mc.Service.MergePR(mc.Context, pr.Number, mc.Method); err != nil {
		return err
	}
	slog.Info("Merged pull request", "pr", pr.Number, "method", mc.Method, "approvers", approvers)

	if len(approvers) > 0 {
		fmt.Fprintf(mc.Out, "Merged PR #%d (approved by %s)\n", pr.Number, strings.Join(approvers, ", "))
	} else {
		fmt.Fprintf(mc.Out, "Merged PR #%d\n", pr.Number)
	}
	mc.PrintRateLimit()
	return nil
}

func (mc *MergeCommand) target() (*cmd.PullRequest, error) {
	if mc.Number > 0 {
		return mc.Service.GetPR(mc.Context, mc.Number)
	}
	return mc.ResolveBranchPR(mc.Head, mc.Base, mc.NewPrinter())
}
