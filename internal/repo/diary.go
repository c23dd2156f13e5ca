package repo

import (
	"Diarium/internal/model"
	"context"

	"gorm.io/gorm"
)

// DiaryRepository — хранилище записей дневника. Все методы, кроме Create, ограничены владельцем.
type DiaryRepository interface {
	Create(ctx context.Context, d *model.Diary) error
	// ListByUser возвращает записи пользователя по возрастанию write_date; day — необязательный фильтр по суткам.
	ListByUser(ctx context.Context, userID int64, day *DayFilter) ([]model.Diary, error)
	GetByID(ctx context.Context, userID, id int64) (*model.Diary, error)
	Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Diary, error)
	Delete(ctx context.Context, userID, id int64) error
}

type diaryRepo struct {
	db *gorm.DB
}

// NewDiaryRepository создаёт реализацию репозитория для Diary.
func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepo{db: db}
}

func (r *diaryRepo) Create(ctx context.Context, d *model.Diary) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(d).Error)
}

func (r *diaryRepo) ListByUser(ctx context.Context, userID int64, day *DayFilter) ([]model.Diary, error) {
	var out []model.Diary
	q := day.apply(r.db.WithContext(ctx).Where("user_id = ?", userID))
	if err := q.Order("write_date ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *diaryRepo) GetByID(ctx context.Context, userID, id int64) (*model.Diary, error) {
	var d model.Diary
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *diaryRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Diary, error) {
	return updateScoped[model.Diary](ctx, r.db, byOwner(userID), id, touch(updates))
}

func (r *diaryRepo) Delete(ctx context.Context, userID, id int64) error {
	return deleteScoped[model.Diary](ctx, r.db, byOwner(userID), id)
}
