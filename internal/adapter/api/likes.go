package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"blogctl/internal/domain"
)

// ListMine fetches the current user's like-records, optionally narrowed to
// one article. A response that is not a JSON array yields an empty slice:
// the like cache treats "nothing usable" and "nothing liked" the same way.
func (c *Client) ListMine(ctx context.Context, articleID int64) ([]domain.Like, error) {
	params := url.Values{}
	params.Set("mine", "1")
	if articleID != 0 {
		params.Set("article", strconv.FormatInt(articleID, 10))
	}
	path := pathLikes + "?" + params.Encode()

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		var apiErr *Error
		var netErr *NetworkError
		if errors.As(err, &apiErr) || errors.As(err, &netErr) {
			return nil, err
		}
		// Undecodable 2xx body: nothing usable, same as nothing liked.
		return []domain.Like{}, nil
	}
	var likes []domain.Like
	if err := json.Unmarshal(raw, &likes); err != nil {
		return []domain.Like{}, nil
	}
	return likes, nil
}

// CreateLike records a like for the article and returns the created
// like-record. Backends in toggle mode may answer with a bare status and
// no record id; the returned Like then carries only the article id.
func (c *Client) CreateLike(ctx context.Context, articleID int64) (*domain.Like, error) {
	var row domain.Like
	payload := map[string]int64{"article": articleID}
	if err := c.do(ctx, http.MethodPost, pathLikes, "", payload, &row); err != nil {
		return nil, err
	}
	if row.Article == 0 {
		row.Article = articleID
	}
	return &row, nil
}

// DeleteLike removes a like-record by its own id.
func (c *Client) DeleteLike(ctx context.Context, likeID int64) error {
	return c.do(ctx, http.MethodDelete, likePath(likeID), "", nil, nil)
}
