package ratelimit

import (
	"context"
	"time"
)

// Policy is a fixed window: at most Requests hits per Window.
type Policy struct {
	Requests int
	Window   time.Duration
}

// Result describes the state of the window after a hit.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (*Result, error)
	Reset(ctx context.Context, key string) error
}
