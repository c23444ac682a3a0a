// Package app holds the application services of the blog client: the
// session store, the like-state cache, and the article operations the
// command layer calls into.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogctl/internal/domain"
)

// ErrNotAuthenticated indicates an operation that needs a session was
// called without one.
var ErrNotAuthenticated = errors.New("not logged in")

// SessionService owns the client's authentication state: the bearer
// credential, its persistence, and the identity resolved from it. The
// credential and identity move together; callers never observe a token
// without an identity.
//
// Mutations are ordered by a generation counter. Login, Register, and
// Logout bump it when they commit; bare identity refreshes (Bootstrap,
// RefreshIdentity) record the generation they started under and discard
// their result if anything committed in between. A late identity response
// can therefore never resurrect a session that was logged out under it.
type SessionService struct {
	api    domain.AuthAPI
	tokens domain.TokenStore

	mu      sync.Mutex
	gen     uint64
	current domain.Session
}

// NewSessionService creates a session store over the given auth endpoints
// and token persistence.
func NewSessionService(api domain.AuthAPI, tokens domain.TokenStore) *SessionService {
	return &SessionService{api: api, tokens: tokens}
}

// Current returns a snapshot of the session state.
func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Authenticated reports whether a resolved identity is active.
func (s *SessionService) Authenticated() bool {
	return s.Current().Authenticated()
}

// Login obtains a token for the credentials and resolves the identity
// behind it as one atomic step: the token is persisted and committed only
// together with the identity. If the identity fetch fails the new token is
// discarded and the previous state stands.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	tok, err := s.api.ObtainToken(ctx, username, password)
	if err != nil {
		return nil, err
	}
	ident, err := s.api.Me(ctx, tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if err := s.tokens.Save(tok); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	s.mu.Lock()
	s.gen++
	s.current = domain.Session{Token: tok, User: &ident.User, Profile: ident.Profile}
	s.mu.Unlock()
	return &ident.User, nil
}

// Register creates an account and, on success, logs straight in with the
// same credentials. A failed registration never attempts the login. The
// username and email are trimmed; a blank email is omitted from the
// request entirely.
func (s *SessionService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := s.api.Register(ctx, username, password, email); err != nil {
		return nil, err
	}
	return s.Login(ctx, username, password)
}

// Logout drops the persisted credential and the in-memory identity. It
// never touches the network and is safe to call any number of times.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.gen++
	s.current = domain.Session{}
	s.mu.Unlock()
	_ = s.tokens.Clear()
}

// RefreshIdentity re-resolves the identity behind the current token. With
// no token it is a no-op. The result is discarded if a login or logout
// committed while the fetch was in flight.
func (s *SessionService) RefreshIdentity(ctx context.Context) error {
	s.mu.Lock()
	tok := s.current.Token
	gen := s.gen
	s.mu.Unlock()

	if tok == nil {
		return nil
	}
	ident, err := s.api.Me(ctx, tok.AccessToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.current.User = &ident.User
	s.current.Profile = ident.Profile
	return nil
}

// Bootstrap restores the session from the persisted credential at startup.
// All failures are silent by contract: an unusable credential is purged and
// the store is left anonymous. An access token whose exp claim has passed
// is refreshed first when a refresh token is on hand.
func (s *SessionService) Bootstrap(ctx context.Context) {
	tok, err := s.tokens.Load()
	if err != nil || tok == nil {
		return
	}

	if accessExpired(tok.AccessToken) && tok.RefreshToken != "" {
		if fresh, err := s.api.RefreshToken(ctx, tok.RefreshToken); err == nil {
			tok = fresh
			_ = s.tokens.Save(tok)
		}
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	ident, err := s.api.Me(ctx, tok.AccessToken)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// A login or logout resolved while we were fetching; it wins.
		return
	}
	if err != nil {
		s.current = domain.Session{}
		_ = s.tokens.Clear()
		return
	}
	s.gen++
	s.current = domain.Session{Token: tok, User: &ident.User, Profile: ident.Profile}
}

// accessExpired reports whether the access token carries an exp claim in
// the past. The token is not verified here; only the backend can do that.
// Opaque or claim-less tokens are assumed live and left for the identity
// endpoint to judge.
func accessExpired(access string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
