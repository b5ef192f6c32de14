package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

const maxPostLength = 5000

type PostService struct {
	repo   ports.PostRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, audit ports.AuditRecorder, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, audit: audit, logger: logger}
}

func (s *PostService) Create(ctx context.Context, author *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" || len(content) > maxPostLength {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.Post{
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorHandle: author.Handle,
		Content:      content,
		ImageURL:     input.ImageURL,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", author.ID).Msg("failed to create post")
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: author.ID, Action: domain.AuditPostCreated, TargetID: created.ID})
	}
	return created, nil
}

func (s *PostService) List(ctx context.Context, page, limit int) ([]*domain.Post, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes a post. Only the author or an admin may delete; anyone else
// gets ErrForbidden without learning anything further about the post.
func (s *PostService) Delete(ctx context.Context, id, actorID string, actorIsAdmin bool) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID && !actorIsAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{ActorID: actorID, Action: domain.AuditPostDeleted, TargetID: id})
	}
	return nil
}
