package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

type EventService struct {
	repo   ports.EventRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewEventService(repo ports.EventRepository, audit ports.AuditRecorder, logger zerolog.Logger) *EventService {
	return &EventService{repo: repo, audit: audit, logger: logger}
}

func (s *EventService) Create(ctx context.Context, input ports.CreateEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.OrganizerID == "" || input.StartsAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	event := &domain.Event{
		Title:       title,
		Description: input.Description,
		Location:    input.Location,
		OrganizerID: input.OrganizerID,
		StartsAt:    input.StartsAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Str("organizer_id", input.OrganizerID).Msg("failed to create event")
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: input.OrganizerID, Action: domain.AuditEventCreated, TargetID: created.ID, Detail: title})
	}
	return created, nil
}

func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]*domain.Event, error) {
	return s.repo.ListUpcoming(ctx, time.Now().UTC(), limit)
}
