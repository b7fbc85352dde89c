package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisTest(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &RedisClient{Client: client}, mr
}

func TestRedisClient_SetGet(t *testing.T) {
	client, mr := setupRedisTest(t)
	defer mr.Close()

	ctx := context.Background()

	err := client.Set(ctx, "key", "value", time.Minute)
	assert.NoError(t, err)

	val, err := client.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)

	// Verify TTL was applied
	assert.True(t, mr.TTL("key") > 0)
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client, mr := setupRedisTest(t)
	defer mr.Close()

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	client, mr := setupRedisTest(t)
	defer mr.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 0))
	assert.NoError(t, client.Delete(ctx, "key"))

	_, err := client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_SetExpiry(t *testing.T) {
	client, mr := setupRedisTest(t)
	defer mr.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 5*time.Minute))

	// Advance past the TTL; key should be gone
	mr.FastForward(6 * time.Minute)

	_, err := client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}
