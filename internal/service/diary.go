package service

import (
	"Diarium/internal/model"
	"Diarium/internal/repo"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DiaryInput — входные поля записи дневника. nil означает «поле не передано».
type DiaryInput struct {
	Content   *string
	WriteDate *string
}

// DiaryService — CRUD дневника в пределах записей вызывающего пользователя.
type DiaryService struct {
	repo   repo.DiaryRepository
	logger *zap.SugaredLogger
}

func NewDiaryService(r repo.DiaryRepository, logger *zap.SugaredLogger) *DiaryService {
	return &DiaryService{repo: r, logger: logger}
}

// Create создаёт запись от имени userID; владелец из запроса не принимается.
func (s *DiaryService) Create(ctx context.Context, userID int64, in DiaryInput) (*model.Diary, error) {
	updates, err := in.validate(false)
	if err != nil {
		return nil, err
	}
	d := &model.Diary{
		UserID:    userID,
		Content:   updates["content"].(string),
		WriteDate: updates["write_date"].(time.Time),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Infow("diary created", "user_id", userID, "id", d.ID)
	return d, nil
}

// List возвращает записи пользователя; date (YYYY-MM-DD) фильтрует по write_date.
func (s *DiaryService) List(ctx context.Context, userID int64, date string) ([]model.Diary, error) {
	return s.list(ctx, userID, repo.ColumnWriteDate, date)
}

// ListByCreatedDate возвращает записи пользователя, созданные в указанный день.
func (s *DiaryService) ListByCreatedDate(ctx context.Context, userID int64, date string) ([]model.Diary, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fieldError("date", msgDateFormat)
	}
	return s.list(ctx, userID, repo.ColumnCreatedAt, date)
}

func (s *DiaryService) list(ctx context.Context, userID int64, column, date string) ([]model.Diary, error) {
	var filter *repo.DayFilter
	if strings.TrimSpace(date) != "" {
		day, err := parseDay("date", date)
		if err != nil {
			return nil, err
		}
		filter = &repo.DayFilter{Column: column, Day: day}
	}
	return s.repo.ListByUser(ctx, userID, filter)
}

// Get возвращает запись, только если она принадлежит userID.
func (s *DiaryService) Get(ctx context.Context, userID, id int64) (*model.Diary, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update меняет запись владельца. partial=false требует все обязательные поля (PUT).
// Чужая или отсутствующая запись даёт ErrNotFound ещё до проверки полей.
func (s *DiaryService) Update(ctx context.Context, userID, id int64, in DiaryInput, partial bool) (*model.Diary, error) {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}
	updates, err := in.validate(partial)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, userID, id, updates)
}

func (s *DiaryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Infow("diary deleted", "user_id", userID, "id", id)
	return nil
}

// validate проверяет поля и возвращает их в виде набора колонок для записи.
func (in DiaryInput) validate(partial bool) (map[string]any, error) {
	v := &ValidationError{}
	requireText(v, "content", in.Content, partial)

	updates := map[string]any{}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	switch {
	case in.WriteDate == nil:
		if !partial {
			v.Add("write_date", msgRequired)
		}
	default:
		t, ok := parseDatetime(*in.WriteDate)
		if !ok {
			v.Add("write_date", msgDatetime)
			break
		}
		updates["write_date"] = t
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	return updates, nil
}
