package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles admin login attempts per username, backed by Redis.
// Key format: login_attempts:<username>, a counter expiring after the window.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow counts the attempt and reports whether it is within the budget for
// the current window. The window starts at the first attempt.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Incr(ctx, l.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, l.key(key), l.window).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return n <= int64(l.maxAttempts), nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_attempts:" + username
}
