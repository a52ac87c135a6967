package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/github"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// TableHeaders are the column titles of --table output
var TableHeaders = []string{"#", "State", "Status", "Merge", "BaseFork", "Base", "HeadFork", "Head", "Title"}

// Printer renders pull requests in the plain, number-only or table layouts
type Printer struct {
	Out         io.Writer
	NumberOnly  bool
	Table       bool
	NoHeaders   bool
	TableFormat string
	Status      func(cmd.PullRequest) string // Only consulted for tables
	Now         func() time.Time
}

// NewPrinter returns a printer writing to the command output with the configured table format
func (bc *BaseCommand) NewPrinter() *Printer {
	return &Printer{
		Out:         bc.Out,
		TableFormat: bc.Settings.TableFormat,
		Status:      bc.StatusOf,
		Now:         time.Now,
	}
}

// StatusOf returns the latest commit status of a pull request, or github.NoStatus when unavailable
func (bc *BaseCommand) StatusOf(pr cmd.PullRequest) string {
	statuses, err := bc.Service.LatestStatuses(bc.Context, pr.Number)
	if err != nil {
		slog.Debug("Could not fetch status", "pr", pr.Number, "error", err)
		return github.NoStatus
	}
	return github.SummarizeStatus(statuses)
}

// FormatPRLine renders the one-line summary of a pull request
func FormatPRLine(pr cmd.PullRequest) string {
	return fmt.Sprintf("#%d [%s] %10s:%s <- %s:%-30s    %s",
		pr.Number, pr.State, pr.Base.RepoOwner, pr.Base.Ref, pr.Head.RepoOwner, pr.Head.Ref, pr.Title)
}

// FormatRateLimit renders the remaining API quota line
func FormatRateLimit(limit cmd.RateLimit) string {
	return fmt.Sprintf("Github Rate Limiting: %d remaining of max %d", limit.Remaining, limit.Limit)
}

// PrintPR writes a single pull request
func (p *Printer) PrintPR(pr cmd.PullRequest) {
	if p.NumberOnly {
		fmt.Fprintf(p.Out, "%d\n", pr.Number)
		return
	}
	fmt.Fprintln(p.Out, FormatPRLine(pr))
}

// PrintPRs writes every pull request, as a table when requested
func (p *Printer) PrintPRs(prs []cmd.PullRequest) {
	if p.Table {
		fmt.Fprintln(p.Out, p.renderTable(prs))
		return
	}
	for _, pr := range prs {
		p.PrintPR(pr)
	}
}

// PrintFiles writes one file name per line
func (p *Printer) PrintFiles(files []string) {
	for _, f := range files {
		fmt.Fprintln(p.Out, f)
	}
}

// PrintComments writes the comments of a pull request with their author and age
func (p *Printer) PrintComments(number int, comments []cmd.Comment) {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	for _, c := range comments {
		fmt.Fprintf(p.Out, "#%d : Comment - %s (%s, %s)\n", number, c.Body, c.User, humanize.RelTime(c.CreatedAt, now, "ago", "from now"))
	}
}

func (p *Printer) renderTable(prs []cmd.PullRequest) string {
	rows := make([][]string, 0, len(prs))
	for _, pr := range prs {
		status := github.NoStatus
		if p.Status != nil {
			status = p.Status(pr)
		}
		rows = append(rows, []string{
			strconv.Itoa(pr.Number),
			string(pr.State),
			status,
			pr.MergeableState,
			pr.Base.RepoOwner,
			pr.Base.Ref,
			pr.Head.RepoOwner,
			pr.Head.Ref,
			pr.Title,
		})
	}

	t := newTable(p.TableFormat).Rows(rows...)
	if !p.NoHeaders {
		t = t.Headers(TableHeaders...)
	}
	return t.String()
}

// newTable returns a table styled after the named format. Unknown formats fall back to simple.
func newTable(format string) *table.Table {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().StyleFunc(func(_, _ int) lipgloss.Style {
		return cellStyle
	})

	switch format {
	case "plain":
		return t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
			BorderColumn(false).BorderHeader(false)
	case "rounded":
		return t.Border(lipgloss.RoundedBorder())
	case "grid":
		return t.Border(lipgloss.NormalBorder()).BorderRow(true)
	case "markdown", "github", "pipe":
		return t.Border(lipgloss.MarkdownBorder()).BorderTop(false).BorderBottom(false)
	case "simple", "":
	default:
		slog.Warn("Unknown table format, using simple", "format", format)
	}

	return t.Border(lipgloss.NormalBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		BorderColumn(false)
}
