// Package ratelimit provides the in-process sliding-window limiter used in
// tests and single-instance deployments. Multi-instance deployments use the
// Redis-backed limiter instead; both honour the same ports.RateLimiter
// contract.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

const defaultMaxKeys = 10000

// MemoryLimiter tracks, per client key, the timestamps of requests inside the
// trailing window. All state is guarded by one mutex; the check-and-record
// step is therefore atomic per process.
type MemoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	data    map[string][]time.Time
	maxKeys int
}

// MemoryLimiterConfig tunes a MemoryLimiter. The zero value is usable.
type MemoryLimiterConfig struct {
	// Now overrides the clock. Tests use this to step time deterministically.
	Now func() time.Time
	// MaxKeys caps how many distinct client keys are tracked at once.
	MaxKeys int
}

func NewMemoryLimiter(cfg MemoryLimiterConfig) *MemoryLimiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = defaultMaxKeys
	}
	return &MemoryLimiter{
		now:     cfg.Now,
		data:    make(map[string][]time.Time),
		maxKeys: cfg.MaxKeys,
	}
}

// Allow checks and records one request for key within the trailing window.
func (m *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (ports.RateLimitDecision, error) {
	if limit <= 0 {
		return ports.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()
	cutoff := now.Add(-window)

	m.mu.Lock()
	defer m.mu.Unlock()

	stamps := m.data[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		m.data[key] = kept
		return ports.RateLimitDecision{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			RetryAfter: kept[0].Add(window).Sub(now),
		}, nil
	}

	if _, tracked := m.data[key]; !tracked && len(m.data) >= m.maxKeys {
		m.gc(cutoff)
	}

	kept = append(kept, now)
	m.data[key] = kept
	return ports.RateLimitDecision{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(kept),
	}, nil
}

// gc drops keys whose every timestamp fell out of the window.
func (m *MemoryLimiter) gc(cutoff time.Time) {
	for key, stamps := range m.data {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(m.data, key)
		}
	}
}
