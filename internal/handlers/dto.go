package handlers

import (
	"Diarium/internal/model"
	"time"
)

func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type sessionResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type diaryResponse struct {
	ID        int64  `json:"id"`
	User      int64  `json:"user"`
	Content   string `json:"content"`
	WriteDate string `json:"write_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toDiary(d *model.Diary) diaryResponse {
	return diaryResponse{
		ID:        d.ID,
		User:      d.UserID,
		Content:   d.Content,
		WriteDate: ts(d.WriteDate),
		CreatedAt: ts(d.CreatedAt),
		UpdatedAt: ts(d.UpdatedAt),
	}
}

func toDiaries(list []model.Diary) []diaryResponse {
	out := make([]diaryResponse, 0, len(list))
	for i := range list {
		out = append(out, toDiary(&list[i]))
	}
	return out
}

type postResponse struct {
	ID        int64  `json:"id"`
	User      int64  `json:"user"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toPost(p *model.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		User:      p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: ts(p.CreatedAt),
		UpdatedAt: ts(p.UpdatedAt),
	}
}

func toPosts(list []model.Post) []postResponse {
	out := make([]postResponse, 0, len(list))
	for i := range list {
		out = append(out, toPost(&list[i]))
	}
	return out
}

type commentResponse struct {
	ID        int64  `json:"id"`
	Post      int64  `json:"post"`
	User      int64  `json:"user"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toComment(c *model.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Post:      c.PostID,
		User:      c.UserID,
		Content:   c.Content,
		CreatedAt: ts(c.CreatedAt),
	}
}

func toComments(list []model.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(list))
	for i := range list {
		out = append(out, toComment(&list[i]))
	}
	return out
}
