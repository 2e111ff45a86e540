// Package limiter provides a fixed-window attempt counter backed by Redis.
//
// It is used to throttle abuse-prone operations such as OTP verification. The
// counter is best effort: a Redis failure never blocks the guarded operation.
package limiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts attempts per key within a rolling window.
type Limiter interface {
	// Allow records an attempt for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset clears the attempt counter for key.
	Reset(ctx context.Context, key string) error
}

// RedisLimiter implements Limiter using INCR with a window TTL.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedis returns a Redis-backed limiter allowing limit attempts per window.
func NewRedis(client *redis.Client, limit int64, window time.Duration) *RedisLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	return &RedisLimiter{
		client: client,
		prefix: "limiter:",
		limit:  limit,
		window: window,
	}
}

// Allow records an attempt for key and reports whether it is within the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fk := l.prefix + key

	count, err := l.client.Incr(ctx, fk).Result()
	if err != nil {
		return false, err
	}

	// The TTL starts with the first attempt in the window.
	if count == 1 {
		if err := l.client.Expire(ctx, fk, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= l.limit, nil
}

// Reset clears the attempt counter for key.
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
