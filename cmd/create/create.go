// Package create implements the create command for opening a new pull request.
package create

import (
	"log/slog"

	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// CreateCommand encapsulates the create command with common functionality
type CreateCommand struct {
	commands.BaseCommand
	Title  string
	Head   string
	Base   string
	Body   string
	Labels []string
}

// NewCreateCmd creates the create command
func NewCreateCmd(globals *commands.GlobalOptions) *cobra.Command {
	createCmd := &CreateCommand{}

	cobraCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pull request",
		Long: `Create a pull request from a head branch into a base branch.

Labels given with -l are applied once the pull request exists.

Examples:
  github-pr -r dataxu/app create -t "Fix upload" --head fix-upload
  github-pr -r dataxu/app create -t "Fix upload" --head fix-upload --base develop -l bug -l urgent`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			createCmd.Globals = globals
			if err := createCmd.Init(cobraCmd); err != nil {
				return err
			}
			createCmd.Base = commands.StringOr(createCmd.Base, createCmd.Settings.Base)

			if err := commands.RequireFields(
				commands.Required("title", createCmd.Title != ""),
				commands.Required("head", createCmd.Head != ""),
				commands.Required("base", createCmd.Base != ""),
			); err != nil {
				return err
			}

			if err := createCmd.Connect(); err != nil {
				return err
			}
			return createCmd.Run()
		},
	}

	cobraCmd.Flags().StringVarP(&createCmd.Title, "title", "t", "", "Title of the pull request")
	cobraCmd.Flags().StringVar(&createCmd.Head, "head", "", "Branch the changes come from")
	cobraCmd.Flags().StringVar(&createCmd.Base, "base", "", "Branch to merge into (default from settings, master)")
	cobraCmd.Flags().StringVar(&createCmd.Body, "body", "", "Description of the pull request")
	cobraCmd.Flags().StringSliceVarP(&createCmd.Labels, "label", "l", nil, "Labels to apply")

	return cobraCmd
}

// Run executes the create command
func (cc *CreateCommand) Run() error {
	pr, err := cc.Service.CreatePR(cc.Context, cc.Title, cc.Body, cc.Head, cc.Base)
	if err != nil {
		return err
	}
	slog.Info("Created pull request", "pr", pr.Number, "head", cc.Head, "base", cc.Base)

	if len(cc.Labels) > 0 {
		if err := cc.Service.SetLabels(cc.Context, pr.Number, cc.Labels); err != nil {
			return err
		}
	}

	cc.NewPrinter().PrintPR(*pr)
	cc.PrintRateLimit()
	return nil
}
