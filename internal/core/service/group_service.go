package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

type GroupService struct {
	repo   ports.GroupRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewGroupService(repo ports.GroupRepository, audit ports.AuditRecorder, logger zerolog.Logger) *GroupService {
	return &GroupService{repo: repo, audit: audit, logger: logger}
}

func (s *GroupService) Create(ctx context.Context, input ports.CreateGroupInput) (*domain.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.OwnerID == "" {
		return nil, domain.ErrInvalidInput
	}

	group := &domain.Group{
		Name:        name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		// The founder is always the first member.
		MemberIDs: []string{input.OwnerID},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create group")
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: input.OwnerID, Action: domain.AuditGroupCreated, TargetID: created.ID, Detail: name})
	}
	return created, nil
}

func (s *GroupService) List(ctx context.Context, page, limit int) ([]*domain.Group, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *GroupService) Join(ctx context.Context, groupID, userID string) error {
	if err := s.repo.AddMember(ctx, groupID, userID); err != nil {
		return err
	}
	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: userID, Action: domain.AuditGroupJoined, TargetID: groupID})
	}
	return nil
}

func (s *GroupService) Leave(ctx context.Context, groupID, userID string) error {
	if err := s.repo.RemoveMember(ctx, groupID, userID); err != nil {
		return err
	}
	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: userID, Action: domain.AuditGroupLeft, TargetID: groupID})
	}
	return nil
}
