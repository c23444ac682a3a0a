package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogctl/internal/adapter/api"
)

func (c *cli) newLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <article-id>",
		Short: "Toggle your like on an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.likes.Refresh(cmd.Context()); err != nil {
				return err
			}

			article, err := c.articles.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			liked, err := c.likes.Toggle(cmd.Context(), article)
			if err != nil {
				return err
			}
			if liked {
				fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("Liked %q (%d likes)", article.Title, article.LikesCount)))
			} else {
				fmt.Fprintf(c.out, "Unliked %q (%d likes)\n", article.Title, article.LikesCount)
			}
			return nil
		},
	}
}

func (c *cli) newLikesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "likes",
		Short: "List the articles you have liked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.likes.Refresh(cmd.Context()); err != nil {
				return err
			}
			ids := c.likes.Liked()
			if len(ids) == 0 {
				fmt.Fprintln(c.out, mutedStyle.Render("No likes yet."))
				return nil
			}
			for _, id := range ids {
				article, err := c.articles.Get(cmd.Context(), id)
				if err != nil {
					if api.IsNotFound(err) {
						fmt.Fprintln(c.out, mutedStyle.Render(fmt.Sprintf("#%d (article gone)", id)))
						continue
					}
					return err
				}
				fmt.Fprintln(c.out, renderArticleLine(*article, true))
			}
			return nil
		},
	}
}
