package repo

import (
	"Diarium/internal/model"
	"context"

	"gorm.io/gorm"
)

// PostRepository — хранилище постов. Чтение публичное, изменение ограничено автором.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	List(ctx context.Context) ([]model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Post, error)
	Delete(ctx context.Context, userID, id int64) error
}

type postRepo struct {
	db *gorm.DB
}

// NewPostRepository создаёт реализацию репозитория для Post.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, p *model.Post) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(p).Error)
}

// List отдаёт все посты, новые первыми.
func (r *postRepo) List(ctx context.Context) ([]model.Post, error) {
	var out []model.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *postRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Post, error) {
	return updateScoped[model.Post](ctx, r.db, byOwner(userID), id, touch(updates))
}

func (r *postRepo) Delete(ctx context.Context, userID, id int64) error {
	return deleteScoped[model.Post](ctx, r.db, byOwner(userID), id)
}
