// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

// LoginLimiter throttles console login attempts per client ip and email.
type LoginLimiter interface {
	CheckLoginAttempt(ctx context.Context, ip, email string) (allowed bool, remaining int64, err error)
	ResetLoginAttempts(ctx context.Context, ip, email string) error
}

type RedisRateLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, prefix string) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, prefix: prefix}
}

// CheckLoginAttempt counts the attempt and reports whether it is allowed.
func (r *RedisRateLimiter) CheckLoginAttempt(ctx context.Context, ip, email string) (bool, int64, error) {
	key := r.loginKey(ip, email)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment login attempt: %w", err)
	}
	count := incr.Val()

	// A counter without expiry, new or left behind by a failed EXPIRE, gets the
	// window now so it can never lock the pair out for good.
	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, key, loginAttemptWindow).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set login attempt window: %w", err)
		}
	}

	return count <= maxLoginAttempts, remainingAttempts(count), nil
}

func (r *RedisRateLimiter) ResetLoginAttempts(ctx context.Context, ip, email string) error {
	return r.client.Del(ctx, r.loginKey(ip, email)).Err()
}

func (r *RedisRateLimiter) loginKey(ip, email string) string {
	return fmt.Sprintf("%sratelimit:login:%s:%s", r.prefix, ip, email)
}

// MemoryRateLimiter is the in-process LoginLimiter used when redis is not configured.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	now      func() time.Time
	attempts map[string]attemptWindow
}

type attemptWindow struct {
	count   int64
	expires time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{now: time.Now, attempts: make(map[string]attemptWindow)}
}

func (r *MemoryRateLimiter) CheckLoginAttempt(_ context.Context, ip, email string) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ip + ":" + email
	now := r.now()
	w := r.attempts[key]
	if now.After(w.expires) {
		w = attemptWindow{expires: now.Add(loginAttemptWindow)}
	}
	w.count++
	r.attempts[key] = w

	return w.count <= maxLoginAttempts, remainingAttempts(w.count), nil
}

func (r *MemoryRateLimiter) ResetLoginAttempts(_ context.Context, ip, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, ip+":"+email)
	return nil
}

func remainingAttempts(count int64) int64 {
	remaining := maxLoginAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
