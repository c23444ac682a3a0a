package api

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	"blogctl/internal/domain"
)

// ErrNoAccessToken indicates the token endpoint answered 2xx without an
// access token, which no usable backend does.
var ErrNoAccessToken = errors.New("token endpoint returned no access token")

// ObtainToken exchanges credentials for a bearer token pair.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (*oauth2.Token, error) {
	var res struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, pathToken, "", payload, &res); err != nil {
		return nil, err
	}
	if res.Access == "" {
		return nil, ErrNoAccessToken
	}
	return &oauth2.Token{
		AccessToken:  res.Access,
		RefreshToken: res.Refresh,
		TokenType:    "Bearer",
	}, nil
}

// RefreshToken trades a refresh token for a fresh access token. The
// refresh token itself is carried over unless the backend rotates it.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*oauth2.Token, error) {
	var res struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	payload := map[string]string{"refresh": refresh}
	if err := c.do(ctx, http.MethodPost, pathTokenRefresh, "", payload, &res); err != nil {
		return nil, err
	}
	if res.Access == "" {
		return nil, ErrNoAccessToken
	}
	if res.Refresh == "" {
		res.Refresh = refresh
	}
	return &oauth2.Token{
		AccessToken:  res.Access,
		RefreshToken: res.Refresh,
		TokenType:    "Bearer",
	}, nil
}

// Register creates a new account. A blank email is omitted from the
// payload entirely; the backend rejects an empty-string email field.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	payload := map[string]string{"username": username, "password": password}
	if email != "" {
		payload["email"] = email
	}
	return c.do(ctx, http.MethodPost, pathRegister, "", payload, nil)
}

// Me resolves the identity behind accessToken. An empty accessToken falls
// back to the stored credential.
func (c *Client) Me(ctx context.Context, accessToken string) (*domain.Identity, error) {
	var ident domain.Identity
	if err := c.do(ctx, http.MethodGet, pathMe, accessToken, nil, &ident); err != nil {
		return nil, err
	}
	return &ident, nil
}
