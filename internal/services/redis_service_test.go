package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace-service/internal/database"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisService skips the test when no local Redis is reachable.
func newTestRedisService(t *testing.T) *RedisService {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skip("Redis not available, skipping test")
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return NewRedisService(database.NewRedisClientFrom(client))
}

func TestRedisServicePresence(t *testing.T) {
	svc := newTestRedisService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetUserOnline(ctx, 7))
	online, err := svc.IsUserOnline(ctx, 7)
	require.NoError(t, err)
	assert.True(t, online)

	users, err := svc.GetOnlineUsers(ctx)
	require.NoError(t, err)
	assert.Contains(t, users, uint(7))

	require.NoError(t, svc.SetUserOffline(ctx, 7))
	online, err = svc.IsUserOnline(ctx, 7)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestRedisServiceRateLimit(t *testing.T) {
	svc := newTestRedisService(t)
	ctx := context.Background()
	key := fmt.Sprintf("rate_limit_test:%d", time.Now().UnixNano())

	for i := 0; i < 3; i++ {
		allowed, err := svc.CheckRateLimit(ctx, key, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := svc.CheckRateLimit(ctx, key, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
}
