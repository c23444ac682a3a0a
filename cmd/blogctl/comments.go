package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <article-id>",
		Short: "List the comments under an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			comments, err := c.articles.Comments(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(comments) == 0 {
				fmt.Fprintln(c.out, mutedStyle.Render("No comments."))
				return nil
			}
			for _, cm := range comments {
				fmt.Fprintln(c.out, renderComment(cm))
			}
			return nil
		},
	}
}

func (c *cli) newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <article-id> <text>...",
		Short: "Post a comment under an article",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cm, err := c.articles.AddComment(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("Comment %d posted.", cm.ID)))
			return nil
		},
	}
}
