// Package comment implements the comment command for posting an issue comment on a pull request.
package comment

import (
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/internal/commands"
	"github.com/spf13/cobra"
)

// CommentCommand encapsulates the comment command with common functionality
type CommentCommand struct {
	commands.BaseCommand
	Number int
	Body   string
}

// NewCommentCmd creates the comment command
func NewCommentCmd(globals *commands.GlobalOptions) *cobra.Command {
	commentCmd := &CommentCommand{}

	cobraCmd := &cobra.Command{
		Use:   "comment",
		Short: "Comment on a pull request",
		Long: `Post a comment on a pull request.

Examples:
  github-pr -r dataxu/app comment -n 12 --body ":shipit:"`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			commentCmd.Globals = globals
			if err := commentCmd.Init(cobraCmd); err != nil {
				return err
			}
			if err := commands.RequireFields(
				commands.Required("number", commentCmd.Number > 0),
				commands.Required("body", commentCmd.Body != ""),
			); err != nil {
				return err
			}
			if err := commentCmd.Connect(); err != nil {
				return err
			}
			return commentCmd.Run()
		},
	}

	cobraCmd.Flags().IntVarP(&commentCmd.Number, "number", "n", 0, "Pull request number")
	cobraCmd.Flags().StringVar(&commentCmd.Body, "body", "", "Comment text")

	return cobraCmd
}

// Run executes the comment command
func (cc *CommentCommand) Run() error {
	comment, err := cc.Service.CreateComment(cc.Context, cc.Number, cc.Body)
	if err != nil {
		return err
	}
	slog.Info("Posted comment", "pr", cc.Number, "comment_id", comment.ID)

	fmt.Fprintf(cc.Out, "Commented on PR #%d\n", cc.Number)
	cc.PrintRateLimit()
	return nil
}
