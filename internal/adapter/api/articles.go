package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"blogctl/internal/domain"
)

type articlePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// List fetches articles matching q. The backend answers either a bare
// array or a DRF pagination envelope; both shapes are accepted.
func (c *Client) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	path := pathArticles
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []domain.Article{}, nil
	}

	var articles []domain.Article
	if err := json.Unmarshal(raw, &articles); err == nil {
		return articles, nil
	}
	var page struct {
		Results []domain.Article `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("decode article list: %w", err)
	}
	return page.Results, nil
}

// Get fetches a single article.
func (c *Client) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	if err := c.do(ctx, http.MethodGet, articlePath(id), "", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create publishes a new article.
func (c *Client) Create(ctx context.Context, title, content string) (*domain.Article, error) {
	var a domain.Article
	payload := articlePayload{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, pathArticles, "", payload, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update replaces an article's title and content.
func (c *Client) Update(ctx context.Context, id int64, title, content string) (*domain.Article, error) {
	var a domain.Article
	payload := articlePayload{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPut, articlePath(id), "", payload, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes an article.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, articlePath(id), "", nil, nil)
}
