// Command blogctl is a terminal client for the blog backend: login and
// registration, article browsing and publishing, comments, and likes.
package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"blogctl/internal/adapter/api"
	"blogctl/internal/adapter/memory"
	"blogctl/internal/adapter/tokenfile"
	"blogctl/internal/app"
	"blogctl/internal/config"
	"blogctl/internal/domain"
)

// cli carries the wired services shared by all commands.
type cli struct {
	cfg      *config.Config
	session  *app.SessionService
	likes    *app.LikeService
	articles *app.ArticleService
	out      io.Writer
}

func newRootCmd() *cobra.Command {
	c := &cli{out: os.Stdout}
	var (
		apiURL    string
		noPersist bool
	)

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Terminal client for the blog backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.Context(), apiURL, noPersist)
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")
	root.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "keep the login token in memory only")

	root.AddCommand(
		c.newLoginCmd(),
		c.newRegisterCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newArticlesCmd(),
		c.newLikeCmd(),
		c.newLikesCmd(),
		c.newCommentsCmd(),
		c.newCommentCmd(),
	)
	return root
}

// init wires config, token storage, the API client, and the services, then
// restores any persisted session. It runs once per invocation, before the
// subcommand.
func (c *cli) init(ctx context.Context, apiURL string, noPersist bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	c.cfg = cfg

	var store domain.TokenStore
	if noPersist {
		store = memory.NewTokenStore()
	} else {
		store = tokenfile.New(cfg.TokenFile)
	}

	client := api.NewWithHTTPClient(cfg.API.BaseURL, store, &http.Client{Timeout: cfg.API.Timeout})
	c.session = app.NewSessionService(client, store)
	c.likes = app.NewLikeService(client, c.session)
	c.articles = app.NewArticleService(client, client)

	c.session.Bootstrap(ctx)
	return nil
}
