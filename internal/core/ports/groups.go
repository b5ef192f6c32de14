package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// CreateGroupInput carries the fields accepted when founding a group.
type CreateGroupInput struct {
	OwnerID     string
	Name        string
	Description string
}

// GroupRepository defines persistence for groups and their memberships.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	FindByID(ctx context.Context, id string) (*domain.Group, error)
	List(ctx context.Context, page, limit int) ([]*domain.Group, error)
	AddMember(ctx context.Context, groupID, userID string) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	Count(ctx context.Context) (int64, error)
}

type GroupService interface {
	Create(ctx context.Context, input CreateGroupInput) (*domain.Group, error)
	List(ctx context.Context, page, limit int) ([]*domain.Group, error)
	Join(ctx context.Context, groupID, userID string) error
	Leave(ctx context.Context, groupID, userID string) error
}
