package handlers

import (
	"Diarium/internal/service"
	"net/http"
)

// PostHandler — общая лента постов.
type PostHandler struct {
	baseHandler
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService, base baseHandler) *PostHandler {
	return &PostHandler{baseHandler: base, posts: posts}
}

type postRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (req postRequest) input() service.PostInput {
	return service.PostInput{Title: req.Title, Content: req.Content}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.posts.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPosts(list))
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	var req postRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.posts.Create(r.Context(), uid, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPost(p))
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.posts.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPost(p))
}

func (h *PostHandler) Update(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := h.callerID(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var req postRequest
		if !h.decode(w, r, &req) {
			return
		}
		p, err := h.posts.Update(r.Context(), uid, id, req.input(), partial)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPost(p))
	}
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.posts.Delete(r.Context(), uid, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
