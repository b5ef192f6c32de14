package redis

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_Window(t *testing.T) {
	limiter := NewRateLimiter(newTestClient(t))
	base := time.Unix(1_700_000_000, 0)
	now := base
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := limiter.Allow(ctx, "client_a", 3, 10*time.Second)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !d.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		now = now.Add(time.Second)
	}

	d, err := limiter.Allow(ctx, "client_a", 3, 10*time.Second)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if d.Allowed {
		t.Fatalf("4th request inside the window should be rejected")
	}
	if d.RetryAfter != 10*time.Second {
		t.Fatalf("expected retry-after equal to the window, got %s", d.RetryAfter)
	}

	// Once the window has slid past the recorded requests, traffic resumes.
	now = base.Add(14 * time.Second)
	d, err = limiter.Allow(ctx, "client_a", 3, 10*time.Second)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("request after window should be allowed")
	}
}

func TestRateLimiter_PerClientIsolation(t *testing.T) {
	limiter := NewRateLimiter(newTestClient(t))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if d, err := limiter.Allow(ctx, "client_a", 2, time.Minute); err != nil || !d.Allowed {
			t.Fatalf("client_a request %d: allowed=%v err=%v", i+1, d.Allowed, err)
		}
	}
	if d, err := limiter.Allow(ctx, "client_a", 2, time.Minute); err != nil || d.Allowed {
		t.Fatalf("client_a should be exhausted: allowed=%v err=%v", d.Allowed, err)
	}

	if d, err := limiter.Allow(ctx, "client_b", 2, time.Minute); err != nil || !d.Allowed {
		t.Fatalf("client_b must not share client_a's counter: allowed=%v err=%v", d.Allowed, err)
	}
}

func TestRateLimiter_Remaining(t *testing.T) {
	limiter := NewRateLimiter(newTestClient(t))

	d, err := limiter.Allow(context.Background(), "client_a", 5, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if d.Remaining != 4 {
		t.Fatalf("expected 4 remaining, got %d", d.Remaining)
	}
}

func TestRateLimiter_ZeroLimitAllows(t *testing.T) {
	limiter := NewRateLimiter(newTestClient(t))

	d, err := limiter.Allow(context.Background(), "client_a", 0, time.Minute)
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !d.Allowed {
		t.Fatalf("non-positive limit disables the limiter")
	}
}
