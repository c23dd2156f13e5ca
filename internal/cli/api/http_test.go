package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	fsrepo "Diarium/internal/cli/repo/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsToken_And_ParsesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token tok123", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPatch, r.Method)
		var m map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		assert.Equal(t, float64(1), m["x"]) // JSON number → float64
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{\"ok\":true}\n"))
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), http.MethodPatch, ts.URL+"/api", map[string]any{"x": 1}, "tok123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(body))
}

// без токена заголовок Authorization не ставится, без payload нет тела
func TestDoJSON_NoTokenNoBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		assert.Equal(t, int64(0), r.ContentLength)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	resp, body, err := DoJSON(context.Background(), http.MethodDelete, ts.URL, nil, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
}

func TestPostJSON_Errors(t *testing.T) {
	ctx := context.Background()
	// chan в payload вызовет ошибку json.Marshal
	_, _, err := PostJSON(ctx, "http://example.invalid", map[string]any{"c": make(chan int)}, "")
	assert.Error(t, err)

	_, _, err = PostJSON(ctx, "http://[::1", map[string]any{"a": 1}, "")
	assert.Error(t, err, "invalid URL")

	_, _, err = PostJSON(ctx, "http://127.0.0.1:1", map[string]any{"a": 1}, "")
	assert.Error(t, err, "unreachable address")
}

func TestDoJSON_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := DoJSON(ctx, http.MethodGet, "http://127.0.0.1:1", nil, "")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPersistSession(t *testing.T) {
	store := fsrepo.AuthFSStore{Path: filepath.Join(t.TempDir(), "tok")}

	s, err := PersistSession([]byte(`{"token":"tok-abc","user_id":7,"username":"alice"}`), store)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.UserID)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)
	login, err := store.LoadLogin()
	require.NoError(t, err)
	assert.Equal(t, "alice", login)

	_, err = PersistSession([]byte(`{"user_id":7}`), store)
	assert.Error(t, err, "token missing")
	_, err = PersistSession([]byte(`{`), store)
	assert.Error(t, err, "broken json")
}

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"detail":"Not found."}`, "Not found."},
		{`{"error":"Invalid credentials"}`, "Invalid credentials"},
		{`{"username":["taken"],"password":["blank"]}`, "password: blank; username: taken"},
		{`boom`, "boom"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ErrorMessage([]byte(c.body)))
	}
}
