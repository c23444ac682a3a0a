package tokenfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	store := New(path)

	want := &oauth2.Token{
		AccessToken:  "a1",
		RefreshToken: "r1",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", perm)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.AccessToken != "a1" || got.RefreshToken != "r1" {
		t.Errorf("unexpected token after round trip: %+v", got)
	}
}

func TestStore_AbsentFileIsAnonymous(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing.json"))
	tok, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok != nil {
		t.Errorf("expected nil token, got %+v", tok)
	}
}

func TestStore_CorruptFileIsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	tok, err := New(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok != nil {
		t.Errorf("expected nil token for corrupt file, got %+v", tok)
	}
}

func TestStore_EmptyAccessIsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte(`{"refresh_token":"r1"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	tok, err := New(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tok != nil {
		t.Errorf("expected nil token without access token, got %+v", tok)
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := New(path)

	if err := store.Save(&oauth2.Token{AccessToken: "a1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file gone, stat err = %v", err)
	}
}
