package repo

import (
	"Diarium/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_PublicReadOwnerWrite(t *testing.T) {
	db := newTestDB(t)
	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	r := NewPostRepository(db)
	ctx := context.Background()

	p1 := &model.Post{UserID: alice.ID, Title: "a", Content: "first"}
	p2 := &model.Post{UserID: bob.ID, Title: "b", Content: "second"}
	require.NoError(t, r.Create(ctx, p1))
	require.NoError(t, r.Create(ctx, p2))

	list, err := r.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		// новые первыми
		assert.Equal(t, p2.ID, list[0].ID)
	}

	got, err := r.GetByID(ctx, p1.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a", got.Title)

	_, err = r.Update(ctx, bob.ID, p1.ID, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, bob.ID, p1.ID), ErrNotFound)

	upd, err := r.Update(ctx, alice.ID, p1.ID, map[string]any{"title": "renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "renamed", upd.Title)
	assert.Equal(t, "first", upd.Content)

	assert.NoError(t, r.Delete(ctx, alice.ID, p1.ID))
	_, err = r.GetByID(ctx, p1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
