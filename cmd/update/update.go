// Package update implements the update command for editing the title, body and labels of a pull request.
package update

import (
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// UpdateCommand encapsulates the update command with common functionality
type UpdateCommand struct {
	commands.BaseCommand
	Number        int
	Title         string
	Body          string
	Labels        []string
	ReplaceLabels bool
}

// NewUpdateCmd creates the update command
func NewUpdateCmd(globals *commands.GlobalOptions) *cobra.Command {
	updateCmd := &UpdateCommand{}

	cobraCmd := &cobra.Command{
		Use:   "update",
		Short: "Update a pull request",
		Long: `Edit the title or body of a pull request and add labels to it.

Labels are added to the existing ones unless --replacelabels is set.

Examples:
  github-pr -r dataxu/app update -n 12 -t "New title"
  github-pr -r dataxu/app update -n 12 -l ready --replacelabels`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			updateCmd.Globals = globals
			if err := updateCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := commands.RequireFields(commands.Required("number", updateCmd.Number > 0)); err != nil {
				return err
			}
			if err := updateCmd.Connect(); err != nil {
				return err
			}
			return updateCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&updateCmd.Number, "number", "n", 0, "Pull request number")
	cobraCmd.Flags().StringVarP(&updateCmd.Title, "title", "t", "", "New title")
	cobraCmd.Flags().StringVar(&updateCmd.Body, "body", "", "New description")
	cobraCmd.Flags().StringSliceVarP(&updateCmd.Labels, "label", "l", nil, "Labels to add")
	cobraCmd.Flags().BoolVar(&updateCmd.ReplaceLabels, "replacelabels", false, "Replace the existing labels instead of adding to them")

	return cobraCmd
}

// Run executes the update command
func (uc *UpdateCommand) Run() error {
	updated := false

	edit := cmd.PREdit{Title: uc.Title, Body: uc.Body}
	if !edit.Empty() {
		if err := uc.Service.EditPR(uc.Context, uc.Number, edit); err != nil {
			return err
		}
		slog.Info("Edited pull request", "pr", uc.Number)
		updated = true
	}

	if len(uc.Labels) > 0 {
		if err := uc.ApplyLabels(uc.Number, uc.Labels, uc.ReplaceLabels); err != nil {
			return err
		}
		updated = true
	}

	if !updated {
		slog.Warn("Nothing to update", "pr", uc.Number)
		fmt.Fprintf(uc.Out, "Warning: PR %d was NOT updated, no title or body to edit provided\n", uc.Number)
	}
	uc.PrintRateLimit()
	return nil
}
