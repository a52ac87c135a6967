// Package list implements the list command for showing pull requests by number, label, branch or filter.
package list

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/filter"
	"github.com/alan/github-pr/internal/github"
	"github.com/spf13/cobra"
)

// ListCommand encapsulates the list command with common functionality
type ListCommand struct {
	commands.BaseCommand
	Number     int
	Files      bool
	Comments   bool
	Labels     []string
	Head       string
	Base       string
	Filters    string
	NumberOnly bool
	Table      bool
	NoHeaders  bool
	Format     string
}

// NewListCmd creates the list command
func NewListCmd(globals *commands.GlobalOptions) *cobra.Command {
	listCmd := &ListCommand{}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List pull requests",
		Long: `List open pull requests.

The first selector given wins: a PR number, then labels, then a head branch,
then a filter string. Without a selector every open pull request is listed.

Filters are comma separated key=value pairs with the keys owner, label,
status and comment (a regular expression matched against comment bodies).

Examples:
  github-pr -r dataxu/app list
  github-pr -r dataxu/app list -n 12 -f
  github-pr -r dataxu/app list -l bug --table
  github-pr -r dataxu/app list --filters owner=jdoe,status=success --numberonly`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			listCmd.Globals = globals
			if err := listCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := listCmd.Connect(); err != nil {
				return err
			}
			return listCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&listCmd.Number, "number", "n", 0, "Pull request number")
	cobraCmd.Flags().BoolVarP(&listCmd.Files, "files", "f", false, "Show the files of the pull request (with -n)")
	cobraCmd.Flags().BoolVarP(&listCmd.Comments, "comments", "c", false, "Show the comments of the pull request (with -n)")
	cobraCmd.Flags().StringSliceVarP(&listCmd.Labels, "label", "l", nil, "Only pull requests with these labels")
	cobraCmd.Flags().StringVar(&listCmd.Head, "head", "", "Only pull requests from this branch")
	cobraCmd.Flags().StringVar(&listCmd.Base, "base", "", "Base branch used with --head (default from settings, master)")
	cobraCmd.Flags().StringVar(&listCmd.Filters, "filters", "", "Filter string, e.g. owner=jdoe,label=bug")
	cobraCmd.Flags().BoolVar(&listCmd.NumberOnly, "numberonly", false, "Print only pull request numbers")
	cobraCmd.Flags().BoolVar(&listCmd.Table, "table", false, "Print a table")
	cobraCmd.Flags().BoolVar(&listCmd.NoHeaders, "noheaders", false, "Omit table headers")
	cobraCmd.Flags().StringVar(&listCmd.Format, "tableformat", "", "Table style: simple, plain, rounded, grid or markdown (default from settings, simple)")

	return cobraCmd
}

// Run executes the list command
func (lc *ListCommand) Run() error {
	printer := lc.NewPrinter()
	printer.NumberOnly = lc.NumberOnly
	printer.Table = lc.Table
	printer.NoHeaders = lc.NoHeaders
	printer.TableFormat = commands.StringOr(lc.Format, printer.TableFormat)

	var err error
	switch {
	case lc.Number > 0:
		err = lc.listOne(printer)
	case len(lc.Labels) > 0:
		err = lc.listByLabels(printer)
	case lc.Head != "":
		err = lc.listByBranch(printer)
	case lc.Filters != "":
		err = lc.listFiltered(printer)
	default:
		err = lc.listAll(printer)
	}
	if err != nil {
		return err
	}

	if !lc.NumberOnly {
		lc.PrintRateLimit()
	}
	return nil
}

func (lc *ListCommand) listOne(printer *commands.Printer) error {
	pr, err := lc.Service.GetPR(lc.Context, lc.Number)
	if err != nil {
		return err
	}

	if lc.Comments {
		comments, err := lc.Service.ListComments(lc.Context, pr.Number, nil)
		if err != nil {
			return err
		}
		printer.PrintComments(pr.Number, comments)
		return nil
	}

	printer.PrintPRs([]cmd.PullRequest{*pr})
	if lc.Files {
		files, err := lc.Service.ListFiles(lc.Context, pr.Number)
		if err != nil {
			return err
		}
		printer.PrintFiles(files)
	}
	return nil
}

func (lc *ListCommand) listByLabels(printer *commands.Printer) error {
	prs, err := lc.Service.ListPRsByLabels(lc.Context, lc.Labels)
	if err != nil {
		return err
	}
	printer.PrintPRs(prs)
	return nil
}

// listByBranch reports a count other than one as a warning and still succeeds
func (lc *ListCommand) listByBranch(printer *commands.Printer) error {
	base := commands.StringOr(lc.Base, lc.Settings.Base)
	prs, err := commands.FindPRForBranch(lc.Context, lc.Service, lc.Head, base)
	var ambiguous *commands.AmbiguousBranchMatchError
	if errors.As(err, &ambiguous) {
		slog.Warn("Branch does not match exactly one pull request", "head", lc.Head, "base", base, "count", ambiguous.Count)
		fmt.Fprintln(lc.Out, ambiguous.Error())
	} else if err != nil {
		return err
	}
	printer.PrintPRs(prs)
	return nil
}

func (lc *ListCommand) listFiltered(printer *commands.Printer) error {
	spec := filter.ParseSpec(lc.Filters)
	slog.Debug("Filtering pull requests", "filters", spec.String())

	pairs, err := lc.Service.ListPairs(lc.Context, github.PairOptions{
		Comments: spec.Has(filter.KeyComment),
		Statuses: spec.Has(filter.KeyStatus),
	})
	if err != nil {
		return err
	}

	matched, err := filter.Apply(pairs, spec)
	if err != nil {
		return err
	}

	prs := make([]cmd.PullRequest, 0, len(matched))
	for _, pair := range matched {
		prs = append(prs, pair.PR)
	}
	printer.PrintPRs(prs)
	return nil
}

func (lc *ListCommand) listAll(printer *commands.Printer) error {
	prs, err := lc.Service.ListPRs(lc.Context)
	if err != nil {
		return err
	}
	printer.PrintPRs(prs)
	return nil
}
