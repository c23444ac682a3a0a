// Package tokenfile persists the bearer credential as a single JSON file.
// Absence of the file means "anonymous".
package tokenfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"blogctl/internal/domain"
)

// Store reads and writes one token file.
type Store struct {
	path string
}

var _ domain.TokenStore = (*Store)(nil)

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored credential, or (nil, nil) when none exists.
// A file that no longer parses is treated as absent; the bootstrap path
// purges it the same way it purges a rejected token.
func (s *Store) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil || tok.AccessToken == "" {
		return nil, nil
	}
	return &tok, nil
}

// Save writes the credential, creating the parent directory if needed.
// The file is user-only: it is a login credential.
func (s *Store) Save(tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the credential. Clearing an absent credential is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
