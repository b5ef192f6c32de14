package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts (the credential store).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
