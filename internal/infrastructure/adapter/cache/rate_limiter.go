package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Decision is the outcome of one rate limit check
type Decision struct {
	Allowed   bool
	Count     int64
	Remaining int64
	ResetIn   time.Duration
}

// RateLimiter is a fixed-window counter kept in redis (INCR + EXPIRE)
type RateLimiter struct {
	client redis.Cmdable
	prefix string
}

// NewRateLimiter creates a limiter whose keys start with prefix
func NewRateLimiter(client redis.Cmdable, prefix string) *RateLimiter {
	return &RateLimiter{client: client, prefix: prefix}
}

// Key builds the counter key for an identifier and window
func (l *RateLimiter) Key(identifier string, window time.Duration) string {
	return l.prefix + ":" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + identifier
}

// Allow counts one request for identifier and reports whether it fits in limit
func (l *RateLimiter) Allow(ctx context.Context, identifier string, limit int, window time.Duration) (Decision, error) {
	key := l.Key(identifier, window)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return Decision{}, err
		}
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}

	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(limit),
		Count:     count,
		Remaining: remaining,
		ResetIn:   ttl,
	}, nil
}
