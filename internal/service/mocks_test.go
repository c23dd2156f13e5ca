package service

import (
	"Diarium/internal/model"
	"Diarium/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// моки репозиториев на testify/mock

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) GetOrCreate(ctx context.Context, userID int64, key string) (*model.Token, bool, error) {
	args := m.Called(ctx, userID, key)
	if t, ok := args.Get(0).(*model.Token); ok {
		return t, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockTokenRepo) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	args := m.Called(ctx, key)
	if t, ok := args.Get(0).(*model.Token); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.TokenRepository = (*mockTokenRepo)(nil)

type mockDiaryRepo struct{ mock.Mock }

func (m *mockDiaryRepo) Create(ctx context.Context, d *model.Diary) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDiaryRepo) ListByUser(ctx context.Context, userID int64, day *repo.DayFilter) ([]model.Diary, error) {
	args := m.Called(ctx, userID, day)
	if v, ok := args.Get(0).([]model.Diary); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDiaryRepo) GetByID(ctx context.Context, userID, id int64) (*model.Diary, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Diary); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDiaryRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Diary, error) {
	args := m.Called(ctx, userID, id, updates)
	if v, ok := args.Get(0).(*model.Diary); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDiaryRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.DiaryRepository = (*mockDiaryRepo)(nil)

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Create(ctx context.Context, p *model.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPostRepo) List(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Post, error) {
	args := m.Called(ctx, userID, id, updates)
	if v, ok := args.Get(0).(*model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.PostRepository = (*mockPostRepo)(nil)

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if v, ok := args.Get(0).([]model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, userID, id int64, updates map[string]any) (*model.Comment, error) {
	args := m.Called(ctx, userID, id, updates)
	if v, ok := args.Get(0).(*model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.CommentRepository = (*mockCommentRepo)(nil)

func strp(s string) *string { return &s }
func i64p(n int64) *int64   { return &n }
