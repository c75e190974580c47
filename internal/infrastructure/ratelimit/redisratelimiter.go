package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

// Allow counts one hit in the current window. The window key carries the
// window start so every window begins with a fresh counter.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, policy Policy) (*Result, error) {
	if policy.Requests <= 0 || policy.Window <= 0 {
		return &Result{Allowed: true, Remaining: -1}, nil
	}

	now := l.now()
	windowStart := now.Truncate(policy.Window)
	redisKey := l.getKey(key, policy.Window, windowStart)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, policy.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(incr.Val())
	remaining := policy.Requests - count
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   count <= policy.Requests,
		Remaining: remaining,
	}
	if !result.Allowed {
		result.RetryAfter = windowStart.Add(policy.Window).Sub(now)
	}
	return result, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s%s:*", keyPrefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration, start time.Time) string {
	return fmt.Sprintf("%s%s:%s:%d", keyPrefix, identifier, window.String(), start.Unix())
}
