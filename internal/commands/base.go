package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/config"
	"github.com/alan/github-pr/internal/github"
	"github.com/spf13/cobra"
)

// RepositoryService is the GitHub surface the subcommands work against
type RepositoryService interface {
	GetPR(ctx context.Context, number int) (*cmd.PullRequest, error)
	GetIssue(ctx context.Context, number int) (*cmd.Issue, error)
	ListComments(ctx context.Context, number int, since *time.Time) ([]cmd.Comment, error)
	ListPRsForBranch(ctx context.Context, head, base string) ([]cmd.PullRequest, error)
	ListPairs(ctx context.Context, opts github.PairOptions) ([]cmd.Pair, error)
	ListPRs(ctx context.Context) ([]cmd.PullRequest, error)
	ListPRsByLabels(ctx context.Context, labels []string) ([]cmd.PullRequest, error)
	ListFiles(ctx context.Context, number int) ([]string, error)
	LastCommitTime(ctx context.Context, number int) (time.Time, error)
	LatestStatuses(ctx context.Context, number int) ([]cmd.CommitStatus, error)
	MergePR(ctx context.Context, number int, method string) error
	SetLabels(ctx context.Context, number int, labels []string) error
	EditPR(ctx context.Context, number int, edit cmd.PREdit) error
	ClosePR(ctx context.Context, number int) error
	CreateComment(ctx context.Context, number int, body string) (*cmd.Comment, error)
	CreatePR(ctx context.Context, title, body, head, base string) (*cmd.PullRequest, error)
	RateLimit(ctx context.Context) (*cmd.RateLimit, error)
}

// ServiceFactory builds a RepositoryService bound to one repository
type ServiceFactory func(ctx context.Context, token, org, repo, apiURL string) (RepositoryService, error)

// NewGitHubService is the default ServiceFactory backed by the GitHub API
func NewGitHubService(ctx context.Context, token, org, repo, apiURL string) (RepositoryService, error) {
	client, err := github.NewClient(ctx, token).WithRepository(org, repo).WithBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	slog.Debug("GitHub client ready", "repository", client.Repository(), "api_url", apiURL)
	return client, nil
}

// GlobalOptions holds the persistent root flags shared by every subcommand
type GlobalOptions struct {
	Repo         string
	Token        string
	EnvFile      string
	SettingsFile string
	APIURL       string
	NoRateLimit  bool

	LoadSettings func(string) (*cmd.Settings, error)
	NewService   ServiceFactory
}

// NewGlobalOptions returns options wired to the real settings loader and GitHub client
func NewGlobalOptions() *GlobalOptions {
	return &GlobalOptions{
		EnvFile:      ".env",
		SettingsFile: config.DefaultSettingsFile,
		LoadSettings: config.LoadSettings,
		NewService:   NewGitHubService,
	}
}

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	Globals  *GlobalOptions
	Settings *cmd.Settings
	Org      string
	Repo     string
	Context  context.Context
	Out      io.Writer
	Service  RepositoryService
}

// Init loads the settings and resolves the target repository. It performs no network calls.
func (bc *BaseCommand) Init(c *cobra.Command) error {
	settings, err := bc.Globals.LoadSettings(bc.Globals.SettingsFile)
	if err != nil {
		return err
	}
	bc.Settings = settings

	repo := bc.Globals.Repo
	if repo == "" {
		repo = settings.Repo
	}
	if err := RequireFields(Required("repo", repo != "")); err != nil {
		return err
	}

	org, name, err := ParseRepository(repo)
	if err != nil {
		return err
	}
	bc.Org = org
	bc.Repo = name

	bc.Context = c.Context()
	if bc.Context == nil {
		bc.Context = context.Background()
	}
	bc.Out = c.OutOrStdout()

	return nil
}

// Connect resolves the API token and builds the repository service
func (bc *BaseCommand) Connect() error {
	token, err := config.ResolveToken(bc.Globals.Token, bc.Globals.EnvFile)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: token (use --token, GITHUB_API_TOKEN or GITHUB_TOKEN)", ErrMissingRequiredField)
	}

	apiURL := bc.Globals.APIURL
	if apiURL == "" {
		apiURL = bc.Settings.APIURL
	}

	service, err := bc.Globals.NewService(bc.Context, token, bc.Org, bc.Repo, apiURL)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}
	bc.Service = service

	slog.Debug("Connected to repository", "org", bc.Org, "repo", bc.Repo, "api_url", apiURL)
	return nil
}

// PrintRateLimit writes the remaining API quota unless --noratelimit is set.
// A failed lookup is logged and never fails the command.
func (bc *BaseCommand) PrintRateLimit() {
	if bc.Globals.NoRateLimit || bc.Service == nil {
		return
	}

	limit, err := bc.Service.RateLimit(bc.Context)
	if err != nil {
		slog.Warn("Could not fetch rate limit", "error", err)
		return
	}
	fmt.Fprintln(bc.Out, FormatRateLimit(*limit))
}

// StringOr returns value, or fallback when value is empty
func StringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
