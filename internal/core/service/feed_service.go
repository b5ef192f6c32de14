package service

import (
	"context"
	"sort"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// FeedService assembles the community activity feed: the newest posts, groups
// and upcoming events from their own collections, merged and sorted by
// creation time.
type FeedService struct {
	posts  ports.PostRepository
	groups ports.GroupRepository
	events ports.EventRepository
}

func NewFeedService(posts ports.PostRepository, groups ports.GroupRepository, events ports.EventRepository) *FeedService {
	return &FeedService{posts: posts, groups: groups, events: events}
}

func (s *FeedService) Feed(ctx context.Context, limit int) ([]ports.FeedItem, error) {
	if limit <= 0 {
		limit = 20
	}

	// Over-fetch each source by the full limit; the merge below trims.
	posts, err := s.posts.List(ctx, 1, limit)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.List(ctx, 1, limit)
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListUpcoming(ctx, time.Now().UTC(), limit)
	if err != nil {
		return nil, err
	}

	items := make([]ports.FeedItem, 0, len(posts)+len(groups)+len(events))
	for _, p := range posts {
		items = append(items, ports.FeedItem{Kind: ports.FeedKindPost, CreatedAt: p.CreatedAt, Post: p})
	}
	for _, g := range groups {
		items = append(items, ports.FeedItem{Kind: ports.FeedKindGroup, CreatedAt: g.CreatedAt, Group: g})
	}
	for _, e := range events {
		items = append(items, ports.FeedItem{Kind: ports.FeedKindEvent, CreatedAt: e.CreatedAt, Event: e})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
