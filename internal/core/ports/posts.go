package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// CreatePostInput carries the fields accepted when publishing a post.
type CreatePostInput struct {
	Content  string
	ImageURL string
}

// PostRepository defines persistence for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, page, limit int) ([]*domain.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type PostService interface {
	Create(ctx context.Context, author *domain.User, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, page, limit int) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// Delete removes a post. Only the author or an admin may delete.
	Delete(ctx context.Context, id, actorID string, actorIsAdmin bool) error
}
