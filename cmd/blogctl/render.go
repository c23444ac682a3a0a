package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blogctl/internal/adapter/api"
	"blogctl/internal/app"
	"blogctl/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	heartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func renderArticleLine(a domain.Article, liked bool) string {
	mark := " "
	if liked {
		mark = heartStyle.Render("♥")
	}
	line := fmt.Sprintf("%s #%d %s", mark, a.ID, titleStyle.Render(a.Title))
	meta := fmt.Sprintf("%d likes", a.LikesCount)
	if a.Author != "" {
		meta = a.Author + ", " + meta
	}
	return line + " " + mutedStyle.Render("("+meta+")")
}

func renderArticle(a domain.Article, liked bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n")
	meta := fmt.Sprintf("#%d, %d likes", a.ID, a.LikesCount)
	if a.Author != "" {
		meta = fmt.Sprintf("#%d by %s, %d likes", a.ID, a.Author, a.LikesCount)
	}
	if liked {
		meta += ", liked by you"
	}
	b.WriteString(mutedStyle.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(a.Content)
	return b.String()
}

func renderComment(cm domain.Comment) string {
	who := cm.Author
	if who == "" {
		who = "anonymous"
	}
	return fmt.Sprintf("%s %s", mutedStyle.Render(who+":"), cm.Content)
}

// renderError turns an error into the message shown to the user. Validation
// errors list the offending fields; network errors say what was unreachable.
func renderError(err error) string {
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return errStyle.Render("cannot reach " + netErr.URL)
	}
	if errors.Is(err, app.ErrNotAuthenticated) {
		return errStyle.Render("not logged in; run `blogctl login` first")
	}

	if fields := api.FieldErrors(err); len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString(errStyle.Render("the server rejected the request:"))
		for _, name := range names {
			for _, msg := range fields[name] {
				b.WriteString("\n  " + name + ": " + msg)
			}
		}
		return b.String()
	}
	return errStyle.Render(err.Error())
}
