package handlers

import (
	"Diarium/internal/middleware"
	"Diarium/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// baseHandler — общее для всех хендлеров: логгер и лимит тела запроса.
type baseHandler struct {
	logger  *zap.SugaredLogger
	maxBody int64
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail переводит ошибку сервиса в HTTP-ответ.
func (b baseHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if v, ok := service.IsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, v.Fields)
		return
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Token")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	default:
		uid, _ := middleware.GetUserIDFromContext(r.Context())
		b.logger.Errorw("request failed", "method", r.Method, "uri", r.RequestURI, "user_id", uid, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal error"})
	}
}

// decode читает JSON-тело в dst. Пустое тело равносильно {}.
// Ошибка уже записана в ответ, если возвращено false.
func (b baseHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if b.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, b.maxBody)
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		b.fail(w, r, fieldErr(typeErr.Field, "Incorrect type. Expected "+typeErr.Type.String()+"."))
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"detail": "request body too large"})
	default:
		b.logger.Warnw("invalid request body", "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "JSON parse error - " + err.Error()})
	}
	return false
}

// pathID разбирает {id} из пути; нечисловой id отдаёт 404, как несуществующий маршрут.
func (b baseHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		b.fail(w, r, service.ErrNotFound)
		return 0, false
	}
	return id, true
}

// callerID — id пользователя из контекста. Маршрут обязан стоять за RequireAuth.
func (b baseHandler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		b.fail(w, r, service.ErrUnauthorized)
	}
	return uid, ok
}

func fieldErr(field, msg string) error {
	v := &service.ValidationError{}
	v.Add(field, msg)
	return v
}
