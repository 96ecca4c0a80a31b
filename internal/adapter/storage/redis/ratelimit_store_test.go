package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowsUnderLimit(t *testing.T) {
	_, client := testClient(t)
	ctx := context.Background()

	store := NewRateLimitStore(client)

	for i := 0; i < 3; i++ {
		result, err := store.Allow(ctx, "client-1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(3), result.Limit)
	}
}

func TestRateLimitStore_BlocksOverLimit(t *testing.T) {
	_, client := testClient(t)
	ctx := context.Background()

	store := NewRateLimitStore(client)

	for i := 0; i < 2; i++ {
		_, err := store.Allow(ctx, "client-1", 2, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "client-1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_KeysAreIndependent(t *testing.T) {
	_, client := testClient(t)
	ctx := context.Background()

	store := NewRateLimitStore(client)

	_, err := store.Allow(ctx, "client-1", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "client-2", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
