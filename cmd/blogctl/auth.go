package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blogctl/internal/app"
)

func (c *cli) newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and remember the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := c.session.Login(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			if err := c.likes.Refresh(cmd.Context()); err != nil {
				fmt.Fprintln(c.out, mutedStyle.Render("could not load your likes: "+err.Error()))
			}
			fmt.Fprintln(c.out, okStyle.Render("Logged in as "+user.Username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func (c *cli) newRegisterCmd() *cobra.Command {
	var password, email string
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw := password
			if pw == "" {
				var err error
				pw, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := c.session.Register(cmd.Context(), args[0], pw, email)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, okStyle.Render("Welcome, "+user.Username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "email address (optional)")
	return cmd
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.session.Logout()
			c.likes.Reset()
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}

func (c *cli) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := c.session.Current()
			if !sess.Authenticated() {
				return app.ErrNotAuthenticated
			}
			fmt.Fprintln(c.out, titleStyle.Render(sess.User.Username))
			if sess.User.Email != "" {
				fmt.Fprintln(c.out, sess.User.Email)
			}
			if sess.Profile != nil && sess.Profile.Bio != "" {
				fmt.Fprintln(c.out, mutedStyle.Render(sess.Profile.Bio))
			}
			return nil
		},
	}
}

// promptLine reads one line from the command's input. Fine for local use;
// scripted callers pass --password instead.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
