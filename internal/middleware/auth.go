package middleware

import (
	"Diarium/internal/service"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	userHolderKey
)

// userHolder — ячейка, через которую WithAuth сообщает id пользователя
// внешним мидлварям (WithLogging видит только свой контекст).
type userHolder struct {
	id int64
}

// Authenticator сопоставляет ключ токена с id пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (int64, error)
}

// WithAuth читает заголовок "Authorization: Token <key>" (или "Bearer <key>").
// Без заголовка запрос идёт дальше анонимно; битый или неизвестный токен — сразу 401.
func WithAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			key, ok := parseAuthorization(header)
			if !ok {
				unauthorized(w, "Invalid token header.")
				return
			}

			uid, err := auth.Authenticate(r.Context(), key)
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) {
					unauthorized(w, "Invalid token.")
					return
				}
				if logger != nil {
					logger.Errorw("auth: token lookup failed", "error", err)
				}
				writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
				return
			}

			if h, ok := r.Context().Value(userHolderKey).(*userHolder); ok {
				h.id = uid
			}
			ctx := context.WithValue(r.Context(), userIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает только запросы, для которых WithAuth установил пользователя.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			unauthorized(w, "Authentication credentials were not provided.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext возвращает id аутентифицированного пользователя.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok && uid > 0
}

// WithUserID кладёт id пользователя в контекст.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func parseAuthorization(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", false
	}
	switch strings.ToLower(parts[0]) {
	case "token", "bearer":
		return parts[1], true
	default:
		return "", false
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Token")
	writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
