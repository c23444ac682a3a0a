package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"blogctl/internal/domain"
)

func (c *cli) newArticlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse and manage articles",
	}
	cmd.AddCommand(
		c.newArticlesListCmd(),
		c.newArticlesGetCmd(),
		c.newArticlesCreateCmd(),
		c.newArticlesEditCmd(),
		c.newArticlesDeleteCmd(),
	)
	return cmd
}

func (c *cli) newArticlesListCmd() *cobra.Command {
	var (
		search string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			articles, err := c.articles.List(cmd.Context(), domain.ArticleQuery{Search: search, Page: page})
			if err != nil {
				return err
			}
			if len(articles) == 0 {
				fmt.Fprintln(c.out, mutedStyle.Render("No articles."))
				return nil
			}
			for _, a := range articles {
				fmt.Fprintln(c.out, renderArticleLine(a, c.likes.Has(a.ID)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by search term")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	return cmd
}

func (c *cli) newArticlesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one article with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			article, err := c.articles.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderArticle(*article, c.likes.Has(article.ID)))

			comments, err := c.articles.Comments(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(comments) > 0 {
				fmt.Fprintln(c.out)
				fmt.Fprintln(c.out, titleStyle.Render("Comments"))
				for _, cm := range comments {
					fmt.Fprintln(c.out, renderComment(cm))
				}
			}
			return nil
		},
	}
}

func (c *cli) newArticlesCreateCmd() *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := resolveContent(cmd, content)
			if err != nil {
				return err
			}
			article, err := c.articles.Create(cmd.Context(), title, body)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("Published article %d: %s", article.ID, article.Title)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "article title")
	cmd.Flags().StringVar(&content, "content", "", "article body (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *cli) newArticlesEditCmd() *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace an article's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			body, err := resolveContent(cmd, content)
			if err != nil {
				return err
			}
			article, err := c.articles.Update(cmd.Context(), id, title, body)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, okStyle.Render(fmt.Sprintf("Updated article %d: %s", article.ID, article.Title)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "article title")
	cmd.Flags().StringVar(&content, "content", "", "article body (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (c *cli) newArticlesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.articles.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deleted article %d.\n", id)
			return nil
		},
	}
}

// resolveContent returns the --content value, or the whole of stdin when the
// flag was left empty.
func resolveContent(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read content from stdin: %w", err)
	}
	return string(data), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not an article id", arg)
	}
	return id, nil
}
