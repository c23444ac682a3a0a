// Package memory implements an in-memory token store for development and
// testing, and for runs that should leave nothing on disk.
package memory

import (
	"sync"

	"golang.org/x/oauth2"

	"blogctl/internal/domain"
)

// TokenStore holds the credential in memory only.
type TokenStore struct {
	mu  sync.Mutex
	tok *oauth2.Token
}

var _ domain.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Load returns the held credential, or (nil, nil) when none is set.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tok == nil {
		return nil, nil
	}
	cp := *s.tok
	return &cp, nil
}

// Save replaces the held credential.
func (s *TokenStore) Save(tok *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tok
	s.tok = &cp
	return nil
}

// Clear drops the held credential.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = nil
	return nil
}
