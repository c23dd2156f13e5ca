package repo

import (
	"Diarium/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository — хранилище токенов доступа.
type TokenRepository interface {
	// GetOrCreate атомарно создаёт токен с ключом key, если у пользователя его ещё нет,
	// и возвращает действующий токен пользователя. created=true, если запись вставлена этим вызовом.
	GetOrCreate(ctx context.Context, userID int64, key string) (tok *model.Token, created bool, err error)
	// GetByKey ищет токен по ключу.
	GetByKey(ctx context.Context, key string) (*model.Token, error)
}

type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepository создаёт реализацию репозитория для Token.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) GetOrCreate(ctx context.Context, userID int64, key string) (*model.Token, bool, error) {
	db := r.db.WithContext(ctx)
	t := &model.Token{Key: key, UserID: userID}
	tx := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(t)
	if tx.Error != nil {
		return nil, false, translate(tx.Error)
	}
	created := tx.RowsAffected > 0

	var got model.Token
	if err := db.Where("user_id = ?", userID).First(&got).Error; err != nil {
		return nil, false, translate(err)
	}
	return &got, created, nil
}

func (r *tokenRepo) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	var t model.Token
	if err := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}
