// Package delete implements the delete command, which closes a pull request without merging it.
package delete

import (
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// DeleteCommand encapsulates the delete command with common functionality
type DeleteCommand struct {
	commands.BaseCommand
	Number int
}

// NewDeleteCmd creates the delete command
func NewDeleteCmd(globals *commands.GlobalOptions) *cobra.Command {
	deleteCmd := &DeleteCommand{}

	cobraCmd := &cobra.Command{
		Use:   "delete",
		Short: "Close a pull request",
		Long: `Close a pull request without merging it.

Examples:
  github-pr -r dataxu/app delete -n 12`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			deleteCmd.Globals = globals
			if err := deleteCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := commands.RequireFields(commands.Required("number", deleteCmd.Number > 0)); err != nil {
				return err
			}
			if err := deleteCmd.Connect(); err != nil {
				return err
			}
			return deleteCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&deleteCmd.Number, "number", "n", 0, "Pull request number")

	return cobraCmd
}

// Run executes the delete command
func (dc *DeleteCommand) Run() error {
	if err := dc.Service.ClosePR(dc.Context, dc.Number); err != nil {
		return err
	}
	slog.Info("Closed pull request", "pr", dc.Number)

	fmt.Fprintf(dc.Out, "Closed PR #%d\n", dc.Number)
	dc.PrintRateLimit()
	return nil
}
