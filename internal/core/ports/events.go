package ports

import (
	"context"
	"time"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// CreateEventInput carries the fields accepted when scheduling an event.
type CreateEventInput struct {
	OrganizerID string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
}

// EventRepository defines persistence for community events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Event, error)
	Count(ctx context.Context) (int64, error)
}

type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error)
}
