package handlers

import (
	"Diarium/internal/service"
	"net/http"
)

// CommentHandler — комментарии к постам.
type CommentHandler struct {
	baseHandler
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService, base baseHandler) *CommentHandler {
	return &CommentHandler{baseHandler: base, comments: comments}
}

// post_id принимается как синоним post
type commentRequest struct {
	Post    *int64  `json:"post"`
	PostID  *int64  `json:"post_id"`
	Content *string `json:"content"`
}

func (req commentRequest) input() service.CommentInput {
	post := req.Post
	if post == nil {
		post = req.PostID
	}
	return service.CommentInput{Post: post, Content: req.Content}
}

// ListByPost — комментарии поста из пути, без проверки владельца.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r)
	if !ok {
		return
	}
	list, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toComments(list))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.comments.Create(r.Context(), uid, req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toComment(c))
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.comments.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toComment(c))
}

func (h *CommentHandler) Update(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := h.callerID(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var req commentRequest
		if !h.decode(w, r, &req) {
			return
		}
		c, err := h.comments.Update(r.Context(), uid, id, req.input(), partial)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toComment(c))
	}
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.comments.Delete(r.Context(), uid, id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
