// package main is the entry point for the github-pr tool
package main

import (
	"log/slog"
	"os"

	"github.com/alan/github-pr/cmd/checkcondition"
	"github.com/alan/github-pr/cmd/comment"
	"github.com/alan/github-pr/cmd/create"
	deletecmd "github.com/alan/github-pr/cmd/delete"
	"github.com/alan/github-pr/cmd/list"
	"github.com/alan/github-pr/cmd/merge"
	"github.com/alan/github-pr/cmd/update"
	"github.com/alan/github-pr/internal/commands"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(commands.NewGlobalOptions()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(globals *commands.GlobalOptions) *cobra.Command {
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "github-pr",
		Short: "A CLI tool for working with GitHub pull requests",
		Long: `github-pr lists, filters, creates, comments on, labels, updates, closes and
merges GitHub pull requests. Merges can be gated on approval comments such as
:shipit: from approved mergers.

The API token is read from --token, GITHUB_API_TOKEN, GITHUB_TOKEN or the
--env-file, in that order. Defaults can be kept in a YAML or TOML settings file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&globals.Repo, "repo", "r", "", "Repository in owner/name form")
	rootCmd.PersistentFlags().StringVar(&globals.Token, "token", "", "GitHub API token")
	rootCmd.PersistentFlags().StringVar(&globals.EnvFile, "env-file", globals.EnvFile, "Dotenv file consulted for the token")
	rootCmd.PersistentFlags().StringVar(&globals.SettingsFile, "settings", globals.SettingsFile, "Settings file path (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&globals.APIURL, "api-url", "", "GitHub Enterprise base URL")
	rootCmd.PersistentFlags().BoolVar(&globals.NoRateLimit, "noratelimit", false, "Do not print the remaining API rate limit")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(create.NewCreateCmd(globals))
	rootCmd.AddCommand(list.NewListCmd(globals))
	rootCmd.AddCommand(merge.NewMergeCmd(globals))
	rootCmd.AddCommand(comment.NewCommentCmd(globals))
	rootCmd.AddCommand(deletecmd.NewDeleteCmd(globals))
	rootCmd.AddCommand(update.NewUpdateCmd(globals))
	rootCmd.AddCommand(checkcondition.NewCheckConditionCmd(globals))

	return rootCmd
}

func setupLogger(level, format string) {
	slog.SetDefault(slog.New(newLogHandler(level, format)))
}

func newLogHandler(level, format string) slog.Handler {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Logs go to stderr so stdout stays parseable
	if format == "json" {
		return slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           charmlog.Level(logLevel),
		ReportTimestamp: true,
	})
}
