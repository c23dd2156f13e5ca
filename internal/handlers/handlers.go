package handlers

import (
	"Diarium/internal/config"
	"Diarium/internal/middleware"
	"Diarium/internal/service"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger — проверка доступности хранилища для /healthz (*sql.DB подходит).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services — зависимости HTTP-слоя.
type Services struct {
	Auth     *service.AuthService
	Diaries  *service.DiaryService
	Posts    *service.PostService
	Comments *service.CommentService
	DB       Pinger
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, cfg *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(svc.Auth))

	base := baseHandler{logger: logger, maxBody: cfg.MaxBodyBytes()}
	userHandler := NewUserHandler(svc.Auth, base)
	diaryHandler := NewDiaryHandler(svc.Diaries, base)
	postHandler := NewPostHandler(svc.Posts, base)
	commentHandler := NewCommentHandler(svc.Comments, base)

	r.Get("/healthz", healthz(svc.DB, logger))

	// User routes
	r.Post("/api/register/", userHandler.Register)
	r.Post("/api/login/", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		// Diary routes. {id} у /api/diaries/{id}/ — это дата (YYYY-MM-DD), у остальных — id записи.
		only(r, http.MethodPost, "/api/diaries/create/", diaryHandler.Create)
		only(r, http.MethodGet, "/api/diaries/list/", diaryHandler.List)
		r.Get("/api/diaries/{id}/", diaryHandler.ListByDate)
		r.Get("/api/diaries/{id}/detail/", diaryHandler.Get)
		r.Put("/api/diaries/{id}/update/", diaryHandler.Update(false))
		r.Patch("/api/diaries/{id}/update/", diaryHandler.Update(true))
		r.Delete("/api/diaries/{id}/delete/", diaryHandler.Delete)

		// Post routes
		r.Get("/posts/", postHandler.List)
		only(r, http.MethodPost, "/posts/create/", postHandler.Create)
		r.Get("/posts/{id}/", postHandler.Get)
		r.Put("/posts/update/{id}/", postHandler.Update(false))
		r.Patch("/posts/update/{id}/", postHandler.Update(true))
		r.Delete("/posts/delete/{id}/", postHandler.Delete)

		// Comment routes
		r.Get("/posts/{id}/comments/", commentHandler.ListByPost)
		only(r, http.MethodPost, "/comments/create/", commentHandler.Create)
		r.Get("/comments/{id}/", commentHandler.Get)
		r.Put("/comments/update/{id}/", commentHandler.Update(false))
		r.Patch("/comments/update/{id}/", commentHandler.Update(true))
		r.Delete("/comments/delete/{id}/", commentHandler.Delete)
	})

	return &Handler{Router: r}
}

// only вешает h на method, а остальным методам отвечает 405.
// Без этого GET /api/diaries/create/ уходил бы в соседний /api/diaries/{id}/.
func only(r chi.Router, method, pattern string, h http.HandlerFunc) {
	r.HandleFunc(pattern, methodNotAllowed(method))
	r.Method(method, pattern, h)
}

func methodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": `Method "` + r.Method + `" not allowed.`})
	}
}

func healthz(db Pinger, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Warnw("healthz: database unavailable", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
