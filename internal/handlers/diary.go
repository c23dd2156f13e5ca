package handlers

import (
	"Diarium/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DiaryHandler — дневник текущего пользователя.
type DiaryHandler struct {
	baseHandler
	diaries *service.DiaryService
}

func NewDiaryHandler(diaries *service.DiaryService, base baseHandler) *DiaryHandler {
	return &DiaryHandler{baseHandler: base, diaries: diaries}
}

// поле user в теле игнорируется: владелец всегда берётся из токена
type diaryRequest struct {
	Content   *string `json:"content"`
	WriteDate *string `json:"write_date"`
}

func (req diaryRequest) input() service.DiaryInput {
	return service.DiaryInput{Content: req.Content, WriteDate: req.WriteDate}
}

func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	var req diaryRequest
	if !h.decode(w, r, &req) {
		return
	}
	d, err := h.diaries.Create(r.Context(), uid, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDiary(d))
}

// List — записи пользователя, ?date=YYYY-MM-DD фильтрует по write_date.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	list, err := h.diaries.List(r.Context(), uid, r.URL.Query().Get("date"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiaries(list))
}

// ListByDate — записи пользователя, созданные в день из пути.
func (h *DiaryHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	list, err := h.diaries.ListByCreatedDate(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiaries(list))
}

func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	d, err := h.diaries.Get(r.Context(), uid, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDiary(d))
}

// Update — PUT (partial=false) или PATCH (partial=true).
func (h *DiaryHandler) Update(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := h.callerID(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var req diaryRequest
		if !h.decode(w, r, &req) {
			return
		}
		d, err := h.diaries.Update(r.Context(), uid, id, req.input(), partial)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toDiary(d))
	}
}

func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.diaries.Delete(r.Context(), uid, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
