package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
}

func TestSessionStore_CreateGetDelete(t *testing.T) {
	store := NewSessionStore(newTestClient(t), time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "user_42")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty session id")
	}

	userID, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if userID != "user_42" {
		t.Fatalf("expected user_42, got %q", userID)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionStore_UnknownSession(t *testing.T) {
	store := NewSessionStore(newTestClient(t), time.Hour)

	if _, err := store.Get(context.Background(), "no-such-session"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_DeleteAbsentIsNoError(t *testing.T) {
	store := NewSessionStore(newTestClient(t), time.Hour)

	if err := store.Delete(context.Background(), "no-such-session"); err != nil {
		t.Fatalf("deleting an absent session should not error: %v", err)
	}
}

func TestSessionStore_DistinctIDs(t *testing.T) {
	store := NewSessionStore(newTestClient(t), time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, "user_1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := store.Create(ctx, "user_1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a == b {
		t.Fatalf("two sessions for the same user must have distinct ids")
	}
}
