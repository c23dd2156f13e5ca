package service

import (
	"Diarium/internal/model"
	"Diarium/internal/repo"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// CommentInput — входные поля комментария. Post учитывается только при создании.
type CommentInput struct {
	Post    *int64
	Content *string
}

// CommentService — комментарии к постам.
type CommentService struct {
	repo   repo.CommentRepository
	posts  repo.PostRepository
	logger *zap.SugaredLogger
}

func NewCommentService(r repo.CommentRepository, posts repo.PostRepository, logger *zap.SugaredLogger) *CommentService {
	return &CommentService{repo: r, posts: posts, logger: logger}
}

// Create добавляет комментарий к существующему посту от имени userID.
func (s *CommentService) Create(ctx context.Context, userID int64, in CommentInput) (*model.Comment, error) {
	v := &ValidationError{}
	if in.Post == nil {
		v.Add("post", msgRequired)
	}
	requireText(v, "content", in.Content, false)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, *in.Post); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fieldError("post", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *in.Post))
		}
		return nil, err
	}

	c := &model.Comment{PostID: *in.Post, UserID: userID, Content: *in.Content}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Infow("comment created", "user_id", userID, "post_id", c.PostID, "id", c.ID)
	return c, nil
}

// ListByPost — комментарии поста, без фильтра по владельцу.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *CommentService) Get(ctx context.Context, id int64) (*model.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update меняет текст комментария; доступно только автору.
func (s *CommentService) Update(ctx context.Context, userID, id int64, in CommentInput, partial bool) (*model.Comment, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrNotFound
	}
	v := &ValidationError{}
	requireText(v, "content", in.Content, partial)
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	return s.repo.Update(ctx, userID, id, updates)
}

// Delete удаляет комментарий; доступно автору и владельцу поста.
func (s *CommentService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Infow("comment deleted", "user_id", userID, "id", id)
	return nil
}
