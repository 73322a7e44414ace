package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewStore(rdb, time.Hour), mr
}

func TestStore_RememberAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Remember(ctx, "session-1", 42))

	id, found, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(42), id)

	// первый записанный ID не перезаписывается
	require.NoError(t, store.Remember(ctx, "session-1", 43))
	id, _, _ = store.Get(ctx, "session-1")
	assert.Equal(t, int64(42), id)

	assert.Equal(t, time.Hour, mr.TTL("idem:booking:session-1"))
}

func TestStore_Expires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Remember(ctx, "k", 7))
	mr.FastForward(2 * time.Hour)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_CorruptedValue(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set("idem:booking:bad", "not-a-number"))

	_, _, err := store.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrCache)
}

func TestStore_Unavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrCache)
}

func TestNopStore(t *testing.T) {
	var store KeyStore = NopStore{}

	require.NoError(t, store.Remember(context.Background(), "k", 5))
	id, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, id)
}
