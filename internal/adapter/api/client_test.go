package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"blogctl/internal/adapter/memory"
	"blogctl/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memory.TokenStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := memory.NewTokenStore()
	return NewWithHTTPClient(srv.URL, store, srv.Client()), store
}

func TestClient_AttachesBearerFromStore(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "tok-abc"}))

	err := client.do(context.Background(), http.MethodGet, "/api/articles/", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var sawAuth bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/", "", nil, nil))
	assert.False(t, sawAuth)
}

func TestClient_OverrideTokenWins(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	require.NoError(t, store.Save(&oauth2.Token{AccessToken: "stored"}))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/", "override", nil, nil))
	assert.Equal(t, "Bearer override", gotAuth)
}

func TestClient_JSONHeadersOnlyWithBody(t *testing.T) {
	var contentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.do(context.Background(), http.MethodGet, "/", "", nil, nil))
	assert.Empty(t, contentType)

	require.NoError(t, client.do(context.Background(), http.MethodPost, "/", "", map[string]string{"a": "b"}, nil))
	assert.Equal(t, "application/json", contentType)
}

func TestClient_NoContentIsSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var out map[string]string
	require.NoError(t, client.do(context.Background(), http.MethodDelete, "/", "", nil, &out))
	assert.Nil(t, out)
}

func TestClient_RawTextBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text, not json"))
	}))

	var out string
	require.NoError(t, client.do(context.Background(), http.MethodGet, "/", "", nil, &out))
	assert.Equal(t, "plain text, not json", out)
}

func TestClient_ErrorDetailFieldMap(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"username": []string{"A user with that username already exists."},
		})
	}))

	err := client.do(context.Background(), http.MethodPost, "/api/auth/", "", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, KindValidation, apiErr.Kind())
	assert.Equal(t,
		map[string][]string{"username": {"A user with that username already exists."}},
		FieldErrors(err))
}

func TestClient_ErrorDetailSingleMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "token not valid"})
	}))

	err := client.do(context.Background(), http.MethodGet, "/api/auth/me/", "", nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "token not valid", apiErr.Detail.Message)
	assert.Equal(t, KindAuth, apiErr.Kind())
	assert.True(t, IsAuth(err))
}

func TestClient_ErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnauthorized, KindAuth},
		{http.StatusForbidden, KindAuth},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
	}
	for _, tc := range cases {
		e := &Error{Status: tc.status}
		assert.Equalf(t, tc.kind, e.Kind(), "status %d", tc.status)
	}
	assert.True(t, IsNotFound(&Error{Status: http.StatusNotFound}))
}

func TestClient_NetworkErrorType(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore
	client := NewWithHTTPClient(srv.URL, memory.NewTokenStore(), http.DefaultClient)

	err := client.do(context.Background(), http.MethodGet, "/", "", nil, nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, errors.Unwrap(netErr))
}

func TestClient_ImplementsPorts(t *testing.T) {
	var c any = &Client{}
	_, ok := c.(domain.AuthAPI)
	assert.True(t, ok)
	_, ok = c.(domain.LikeAPI)
	assert.True(t, ok)
}
