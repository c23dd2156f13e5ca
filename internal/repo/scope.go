package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DayFilter ограничивает выборку одними сутками (UTC) по указанной колонке.
type DayFilter struct {
	Column string
	Day    time.Time
}

// Колонки, по которым разрешена фильтрация дневника по дате.
const (
	ColumnWriteDate = "write_date"
	ColumnCreatedAt = "created_at"
)

func (f *DayFilter) apply(db *gorm.DB) *gorm.DB {
	if f == nil {
		return db
	}
	start := time.Date(f.Day.Year(), f.Day.Month(), f.Day.Day(), 0, 0, 0, 0, time.UTC)
	col := ColumnWriteDate
	if f.Column == ColumnCreatedAt {
		col = ColumnCreatedAt
	}
	return db.Where(col+" >= ? AND "+col+" < ?", start, start.Add(24*time.Hour))
}

// updateScoped ищет запись по id в пределах scope, применяет updates и перечитывает её.
// Всё в одной транзакции. Промах по scope даёт ErrNotFound.
func updateScoped[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id int64, updates map[string]any) (*T, error) {
	var out T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := scope(tx).First(&out, id).Error; err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&out).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// deleteScoped удаляет запись по id в пределах scope. Ноль затронутых строк даёт ErrNotFound.
func deleteScoped[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		res := scope(tx).Where("id = ?", id).Delete(&row)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// touch добавляет updated_at, чтобы даже пустой PATCH обновлял отметку времени.
func touch(updates map[string]any) map[string]any {
	out := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}
	out["updated_at"] = time.Now().UTC()
	return out
}

func byOwner(userID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
