// Package domain contains the core entities and ports of the blog client.
package domain

import (
	"context"

	"golang.org/x/oauth2"
)

// User is the identity the backend resolves for the active credential.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Profile is the per-user profile record attached to an identity.
type Profile struct {
	ID        int64  `json:"id"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"created_at"`
}

// Identity is the payload of the identity endpoint.
type Identity struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile,omitempty"`
}

// Session is the authenticated state of the client. Token and User are
// either both set or both unset: a credential whose identity could not be
// resolved is not a session.
type Session struct {
	Token   *oauth2.Token
	User    *User
	Profile *Profile
}

// Authenticated reports whether the session holds a resolved identity.
func (s Session) Authenticated() bool {
	return s.Token != nil && s.User != nil
}

// TokenStore persists the bearer credential between runs. Load returns
// (nil, nil) when no credential is stored.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(tok *oauth2.Token) error
	Clear() error
}

// AuthAPI is the port to the backend's authentication endpoints.
// Me takes the access token explicitly so callers can resolve an identity
// for a credential that has not been committed yet.
type AuthAPI interface {
	ObtainToken(ctx context.Context, username, password string) (*oauth2.Token, error)
	RefreshToken(ctx context.Context, refresh string) (*oauth2.Token, error)
	Register(ctx context.Context, username, password, email string) error
	Me(ctx context.Context, accessToken string) (*Identity, error)
}
