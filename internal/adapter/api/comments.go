package api

import (
	"context"
	"net/http"

	"blogctl/internal/domain"
)

// ListForArticle fetches the comments under one article.
func (c *Client) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, http.MethodGet, articleCommentsPath(articleID), "", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a comment under an article.
func (c *Client) CreateComment(ctx context.Context, articleID int64, content string) (*domain.Comment, error) {
	var cm domain.Comment
	payload := map[string]string{"content": content}
	if err := c.do(ctx, http.MethodPost, articleCommentsPath(articleID), "", payload, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}
