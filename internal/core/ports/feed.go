package ports

import (
	"context"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// Feed item kinds.
const (
	FeedKindPost  = "post"
	FeedKindGroup = "group"
	FeedKindEvent = "event"
)

// FeedItem is one entry of the merged activity feed. Exactly one of Post,
// Group or Event is set, matching Kind.
type FeedItem struct {
	Kind      string        `json:"kind"`
	CreatedAt time.Time     `json:"created_at"`
	Post      *domain.Post  `json:"post,omitempty"`
	Group     *domain.Group `json:"group,omitempty"`
	Event     *domain.Event `json:"event,omitempty"`
}

// FeedService assembles the cross-entity activity feed.
type FeedService interface {
	Feed(ctx context.Context, limit int) ([]FeedItem, error)
}
