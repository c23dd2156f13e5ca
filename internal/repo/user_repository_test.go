package repo

import (
	"Diarium/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Username: "john", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	got, err := r.GetUserByUsername(ctx, "john")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := r.GetUserByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "john", byID.Username)

	// уникальный username
	_, err = r.CreateUser(ctx, &model.User{Username: "john", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err = r.GetUserByUsername(ctx, "doesnotexist")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}
