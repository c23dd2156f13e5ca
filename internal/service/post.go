package service

import (
	"Diarium/internal/model"
	"Diarium/internal/repo"
	"context"

	"go.uber.org/zap"
)

// PostInput — входные поля поста.
type PostInput struct {
	Title   *string
	Content *string
}

// PostService — посты: читают все, меняет и удаляет только автор.
type PostService struct {
	repo   repo.PostRepository
	logger *zap.SugaredLogger
}

func NewPostService(r repo.PostRepository, logger *zap.SugaredLogger) *PostService {
	return &PostService{repo: r, logger: logger}
}

func (s *PostService) Create(ctx context.Context, userID int64, in PostInput) (*model.Post, error) {
	if err := in.validate(false); err != nil {
		return nil, err
	}
	p := &model.Post{UserID: userID, Title: *in.Title, Content: *in.Content}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infow("post created", "user_id", userID, "id", p.ID)
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Update меняет пост автора; чужой пост неотличим от несуществующего.
func (s *PostService) Update(ctx context.Context, userID, id int64, in PostInput, partial bool) (*model.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotFound
	}
	if err := in.validate(partial); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	return s.repo.Update(ctx, userID, id, updates)
}

func (s *PostService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Infow("post deleted", "user_id", userID, "id", id)
	return nil
}

func (in PostInput) validate(partial bool) error {
	v := &ValidationError{}
	requireText(v, "title", in.Title, partial)
	maxLen(v, "title", in.Title, maxTitleLen)
	requireText(v, "content", in.Content, partial)
	return v.OrNil()
}
