package feed

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSeenStore(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisSeenStore(client)
	ctx := context.Background()

	shown, err := store.Has(ctx, "lowstock:1:11")
	require.NoError(t, err)
	assert.False(t, shown)

	require.NoError(t, store.Set(ctx, "lowstock:1:11"))

	shown, err = store.Has(ctx, "lowstock:1:11")
	require.NoError(t, err)
	assert.True(t, shown)

	// Keys are namespaced.
	assert.True(t, server.Exists(seenKeyPrefix+"lowstock:1:11"))
}

func TestMemorySeenStore(t *testing.T) {
	store := NewMemorySeenStore()
	ctx := context.Background()

	shown, err := store.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, shown)

	require.NoError(t, store.Set(ctx, "k"))

	shown, err = store.Has(ctx, "k")
	require.NoError(t, err)
	assert.True(t, shown)
}
