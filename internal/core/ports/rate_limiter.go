package ports

import (
	"context"
	"time"
)

// RateLimitDecision is the outcome of a single Allow call.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAfter is how long the caller should wait before the window frees up.
	// Only meaningful when Allowed is false.
	RetryAfter time.Duration
}

// RateLimiter bounds request volume per client key over a trailing window.
// Implementations must make the check-and-record step atomic per key.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateLimitDecision, error)
}
