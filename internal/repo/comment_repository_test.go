package repo

import (
	"Diarium/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListAndScoping(t *testing.T) {
	db := newTestDB(t)
	alice := mkUser(t, db, "alice")
	bob := mkUser(t, db, "bob")
	carol := mkUser(t, db, "carol")
	posts := NewPostRepository(db)
	r := NewCommentRepository(db)
	ctx := context.Background()

	p := &model.Post{UserID: alice.ID, Title: "t", Content: "c"}
	other := &model.Post{UserID: bob.ID, Title: "t2", Content: "c2"}
	require.NoError(t, posts.Create(ctx, p))
	require.NoError(t, posts.Create(ctx, other))

	c1 := &model.Comment{PostID: p.ID, UserID: bob.ID, Content: "nice"}
	c2 := &model.Comment{PostID: p.ID, UserID: carol.ID, Content: "meh"}
	c3 := &model.Comment{PostID: other.ID, UserID: alice.ID, Content: "elsewhere"}
	for _, c := range []*model.Comment{c1, c2, c3} {
		require.NoError(t, r.Create(ctx, c))
	}

	list, err := r.ListByPost(ctx, p.ID)
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, c1.ID, list[0].ID)
		assert.Equal(t, c2.ID, list[1].ID)
	}

	// правка — только автор
	_, err = r.Update(ctx, alice.ID, c1.ID, map[string]any{"content": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	upd, err := r.Update(ctx, bob.ID, c1.ID, map[string]any{"content": "very nice"})
	assert.NoError(t, err)
	assert.Equal(t, "very nice", upd.Content)

	// удаление — автор или владелец поста
	assert.ErrorIs(t, r.Delete(ctx, carol.ID, c1.ID), ErrNotFound)
	assert.NoError(t, r.Delete(ctx, alice.ID, c2.ID)) // владелец поста
	assert.NoError(t, r.Delete(ctx, bob.ID, c1.ID))   // автор
	// alice — автор c3 на чужом посте
	assert.ErrorIs(t, r.Delete(ctx, carol.ID, c3.ID), ErrNotFound)
	assert.NoError(t, r.Delete(ctx, alice.ID, c3.ID))

	list, err = r.ListByPost(ctx, p.ID)
	assert.NoError(t, err)
	assert.Empty(t, list)
}
