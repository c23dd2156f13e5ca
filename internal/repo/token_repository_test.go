package repo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository_GetOrCreate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	u := mkUser(t, db, "alice")
	r := NewTokenRepository(db)
	ctx := context.Background()

	tok, created, err := r.GetOrCreate(ctx, u.ID, "k1")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "k1", tok.Key)

	// повторный вызов с другим ключом возвращает уже выданный токен
	tok, created, err = r.GetOrCreate(ctx, u.ID, "k2")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "k1", tok.Key)

	got, err := r.GetByKey(ctx, "k1")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)

	_, err = r.GetByKey(ctx, "k2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenRepository_GetOrCreate_Concurrent(t *testing.T) {
	db := newTestDB(t)
	u := mkUser(t, db, "bob")
	r := NewTokenRepository(db)

	const n = 8
	keys := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, _, err := r.GetOrCreate(context.Background(), u.ID, "key-"+string(rune('a'+i)))
			errs[i] = err
			if tok != nil {
				keys[i] = tok.Key
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, keys[0], keys[i])
	}
	var count int64
	require.NoError(t, db.Table("tokens").Where("user_id = ?", u.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
