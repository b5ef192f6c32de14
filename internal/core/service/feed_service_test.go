package service

import (
	"context"
	"testing"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

type stubGroupRepo struct {
	groups []*domain.Group
}

func (r *stubGroupRepo) Create(_ context.Context, g *domain.Group) (*domain.Group, error) {
	r.groups = append(r.groups, g)
	return g, nil
}

func (r *stubGroupRepo) FindByID(_ context.Context, id string) (*domain.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domain.ErrGroupNotFound
}

func (r *stubGroupRepo) List(_ context.Context, page, limit int) ([]*domain.Group, error) {
	return r.groups, nil
}

func (r *stubGroupRepo) AddMember(_ context.Context, groupID, userID string) error    { return nil }
func (r *stubGroupRepo) RemoveMember(_ context.Context, groupID, userID string) error { return nil }
func (r *stubGroupRepo) Count(_ context.Context) (int64, error)                       { return int64(len(r.groups)), nil }

type stubEventRepo struct {
	events []*domain.Event
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	r.events = append(r.events, e)
	return e, nil
}

func (r *stubEventRepo) ListUpcoming(_ context.Context, from time.Time, limit int) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if !e.StartsAt.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.events)), nil
}

func TestFeedService_MergesAndSortsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	posts := newStubPostRepo()
	posts.posts["post-1"] = &domain.Post{ID: "post-1", Content: "old", CreatedAt: base}
	posts.posts["post-2"] = &domain.Post{ID: "post-2", Content: "new", CreatedAt: base.Add(2 * time.Hour)}

	groups := &stubGroupRepo{groups: []*domain.Group{
		{ID: "group-1", Name: "Founders", CreatedAt: base.Add(time.Hour)},
	}}
	events := &stubEventRepo{events: []*domain.Event{
		{ID: "event-1", Title: "Meetup", StartsAt: time.Now().Add(24 * time.Hour), CreatedAt: base.Add(3 * time.Hour)},
	}}

	svc := NewFeedService(posts, groups, events)

	items, err := svc.Feed(context.Background(), 10)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	wantKinds := []string{ports.FeedKindEvent, ports.FeedKindPost, ports.FeedKindGroup, ports.FeedKindPost}
	for i, want := range wantKinds {
		if items[i].Kind != want {
			t.Fatalf("item %d kind = %q, want %q", i, items[i].Kind, want)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Fatalf("feed not sorted newest first at index %d", i)
		}
	}
}

func TestFeedService_TrimsToLimit(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	posts := newStubPostRepo()
	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		posts.posts[id] = &domain.Post{ID: id, Content: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
	}

	svc := NewFeedService(posts, &stubGroupRepo{}, &stubEventRepo{})

	items, err := svc.Feed(context.Background(), 3)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
}

func TestFeedService_DefaultLimit(t *testing.T) {
	svc := NewFeedService(newStubPostRepo(), &stubGroupRepo{}, &stubEventRepo{})

	items, err := svc.Feed(context.Background(), 0)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(items))
	}
}
