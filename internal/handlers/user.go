package handlers

import (
	"Diarium/internal/service"
	"net/http"
)

// UserHandler — регистрация и вход.
type UserHandler struct {
	baseHandler
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService, base baseHandler) *UserHandler {
	return &UserHandler{baseHandler: base, auth: auth}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register создаёт пользователя и сразу отдаёт токен (201).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}
	sess, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Token: sess.Token, UserID: sess.UserID, Username: sess.Username})
}

// Login проверяет пароль и отдаёт действующий токен пользователя.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !h.decode(w, r, &req) {
		return
	}
	sess, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Infow("login rejected", "username", req.Username, "error", err)
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Token: sess.Token, UserID: sess.UserID, Username: sess.Username})
}
