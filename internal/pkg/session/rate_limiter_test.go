package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_WindowExpires(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewMemoryRateLimiter()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < maxLoginAttempts; i++ {
		allowed, _, err := limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, remaining, err := limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)

	other, _, err := limiter.CheckLoginAttempt(ctx, "127.0.0.1", "bia@example.com")
	require.NoError(t, err)
	assert.True(t, other)

	now = now.Add(loginAttemptWindow + time.Second)
	allowed, remaining, err = limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(maxLoginAttempts-1), remaining)
}

func TestRedisRateLimiter_Window(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, "rental-console:")
	ctx := context.Background()
	key := "rental-console:ratelimit:login:127.0.0.1:ana@example.com"

	allowed, remaining, err := limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, int64(maxLoginAttempts-1), remaining)
	assert.Equal(t, loginAttemptWindow, mr.TTL(key))

	for i := 1; i < maxLoginAttempts; i++ {
		allowed, _, err = limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, _, err = limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(loginAttemptWindow + time.Second)
	allowed, _, err = limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, limiter.ResetLoginAttempts(ctx, "127.0.0.1", "ana@example.com"))
	assert.False(t, mr.Exists(key))
}

func TestRedisRateLimiter_RestoresLostExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisRateLimiter(client, "rental-console:")
	ctx := context.Background()
	key := "rental-console:ratelimit:login:127.0.0.1:ana@example.com"

	// a counter whose EXPIRE never landed
	require.NoError(t, client.Set(ctx, key, maxLoginAttempts+3, 0).Err())
	require.Zero(t, mr.TTL(key))

	allowed, _, err := limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, loginAttemptWindow, mr.TTL(key))

	mr.FastForward(loginAttemptWindow + time.Second)
	allowed, _, err = limiter.CheckLoginAttempt(ctx, "127.0.0.1", "ana@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
