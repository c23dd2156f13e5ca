package repo

import (
	"Diarium/internal/model"
	"context"

	"gorm.io/gorm"
)

// CommentRepository — хранилище комментариев.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	// ListByPost возвращает комментарии поста в порядке создания.
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// Update разрешён только автору комментария.
	Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Comment, error)
	// Delete разрешён автору комментария и владельцу поста.
	Delete(ctx context.Context, userID, id int64) error
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepository создаёт реализацию репозитория для Comment.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	return translate(r.db.WithContext(ctx).Omit("User", "Post").Create(c).Error)
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	var out []model.Comment
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *commentRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Comment, error) {
	return updateScoped[model.Comment](ctx, r.db, byOwner(userID), id, updates)
}

func (r *commentRepo) Delete(ctx context.Context, userID, id int64) error {
	return deleteScoped[model.Comment](ctx, r.db, byAuthorOrPostOwner(userID), id)
}

func byAuthorOrPostOwner(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(user_id = ? OR post_id IN (SELECT id FROM posts WHERE user_id = ?))", userID, userID)
	}
}
