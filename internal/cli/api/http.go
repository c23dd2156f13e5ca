package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"Diarium/internal/cli/repo"
)

// Session — ответ /api/register/ и /api/login/.
type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// DoJSON отправляет JSON-запрос. payload == nil означает пустое тело.
// Если token непустой, он передаётся заголовком "Authorization: Token <key>".
func DoJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, bytes.TrimSpace(respBody), nil
}

// PostJSON — DoJSON с методом POST.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodPost, url, payload, token)
}

// PersistSession разбирает тело ответа входа или регистрации и сохраняет токен в store.
func PersistSession(body []byte, store repo.TokenStore) (Session, error) {
	var s Session
	if err := json.Unmarshal(body, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if s.Token == "" {
		return Session{}, errors.New("no token in response")
	}
	if err := store.Save(s.Token); err != nil {
		return Session{}, err
	}
	if s.Username != "" {
		if err := store.SaveLogin(s.Username); err != nil {
			return Session{}, err
		}
	}
	return s, nil
}

// ErrorMessage превращает тело ошибки сервера в одну строку.
// Понимает {"detail": ...}, {"error": ...} и {"field": ["msg", ...]}.
func ErrorMessage(body []byte) string {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(body, &generic); err != nil || len(generic) == 0 {
		return strings.TrimSpace(string(body))
	}
	for _, k := range []string{"detail", "error"} {
		var s string
		if raw, ok := generic[k]; ok && json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	keys := make([]string, 0, len(generic))
	for k := range generic {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var msgs []string
		if json.Unmarshal(generic[k], &msgs) == nil {
			parts = append(parts, k+": "+strings.Join(msgs, " "))
			continue
		}
		parts = append(parts, k+": "+string(generic[k]))
	}
	return strings.Join(parts, "; ")
}
