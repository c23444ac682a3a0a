// Package api implements the HTTP adapter for the blog backend. It owns
// request construction, bearer authorization, and the mapping of responses
// onto typed results and errors. It deliberately has no retry or timeout
// policy of its own; the injected http.Client decides both.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"blogctl/internal/domain"
)

// Client talks to the blog backend. The bearer token is read from the
// token store on every request, so whoever owns the store controls who
// the client speaks as.
type Client struct {
	base   string
	http   *http.Client
	tokens domain.TokenStore
	log    *slog.Logger
}

// Ensure the typed endpoint wrappers cover the domain ports.
var (
	_ domain.AuthAPI    = (*Client)(nil)
	_ domain.ArticleAPI = (*Client)(nil)
	_ domain.LikeAPI    = (*Client)(nil)
	_ domain.CommentAPI = (*Client)(nil)
)

// New creates a client for the backend at baseURL.
func New(baseURL string, tokens domain.TokenStore) *Client {
	return NewWithHTTPClient(baseURL, tokens, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client,
// which carries any timeout the caller wants imposed.
func NewWithHTTPClient(baseURL string, tokens domain.TokenStore, hc *http.Client) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   hc,
		tokens: tokens,
		log:    slog.Default(),
	}
}

// do issues one request. An empty token means "use whatever the store
// holds"; a non-empty token overrides it (needed while logging in, before
// the new credential is committed). A non-nil body is sent as JSON. A
// non-nil out receives the decoded response; 204 and empty bodies leave it
// untouched, and a non-JSON 2xx body is assigned raw when out is *string.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	url := c.base + path

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
	}
	if token == "" {
		if tok, err := c.tokens.Load(); err == nil && tok != nil {
			token = tok.AccessToken
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}

	c.log.Debug("api request", "method", method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Detail: parseDetail(data)}
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		if s, ok := out.(*string); ok {
			*s = string(data)
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}
