package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// RateLimiter is a sliding-window limiter backed by a Redis sorted set per
// client key. Each request is a set member scored by its arrival time; the
// whole prune-count-record step runs inside one Lua script, so concurrent
// requests from the same client never undercount.
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// Key format: ratelimit:<client key>.
var slidingWindowScript = redis.NewScript(`
redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", ARGV[1])
local count = redis.call("ZCARD", KEYS[1])
if count >= tonumber(ARGV[2]) then
  return {0, count}
end
redis.call("ZADD", KEYS[1], ARGV[3], ARGV[4])
redis.call("PEXPIRE", KEYS[1], ARGV[5])
return {1, count + 1}
`)

// NewRateLimiter creates a RateLimiter wrapping the given Redis client.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// Allow checks and records one request for key within the trailing window.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (ports.RateLimitDecision, error) {
	if limit <= 0 {
		return ports.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}

	now := r.now()
	nowMillis := now.UnixMilli()
	windowMillis := window.Milliseconds()
	if windowMillis <= 0 {
		windowMillis = 1000
	}
	cutoff := nowMillis - windowMillis
	// Member must be unique per request; the score alone carries the time.
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8])

	result, err := slidingWindowScript.Run(ctx, r.client,
		[]string{"ratelimit:" + key},
		cutoff, limit, nowMillis, member, windowMillis,
	).Result()
	if err != nil {
		return ports.RateLimitDecision{}, fmt.Errorf("rate limit check: %w", err)
	}

	values, ok := result.([]any)
	if !ok || len(values) < 2 {
		return ports.RateLimitDecision{}, errors.New("unexpected rate limit script response")
	}
	allowed, ok := values[0].(int64)
	if !ok {
		return ports.RateLimitDecision{}, errors.New("invalid rate limit script response")
	}
	count, _ := values[1].(int64)

	decision := ports.RateLimitDecision{
		Allowed:   allowed == 1,
		Limit:     limit,
		Remaining: limit - int(count),
	}
	if decision.Remaining < 0 {
		decision.Remaining = 0
	}
	if !decision.Allowed {
		decision.RetryAfter = window
	}
	return decision, nil
}
