package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

type stubPostRepo struct {
	posts map[string]*domain.Post
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	clone := *post
	r.seq++
	clone.ID = fmt.Sprintf("post-%d", r.seq)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context, page, limit int) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func testAuthor() *domain.User {
	return &domain.User{ID: "user-1", Name: "Ana Silva", Handle: "anasilva", Role: domain.RoleEntrepreneur}
}

func TestPostService_Create_DenormalizesAuthor(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, nil, zerolog.Nop())

	post, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: "  hello community  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if post.Content != "hello community" {
		t.Fatalf("content not trimmed: %q", post.Content)
	}
	if post.AuthorID != "user-1" || post.AuthorName != "Ana Silva" || post.AuthorHandle != "anasilva" {
		t.Fatalf("author not denormalized: %+v", post)
	}
	if post.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestPostService_Create_RejectsEmptyAndOversized(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank content, got %v", err)
	}

	huge := strings.Repeat("x", maxPostLength+1)
	if _, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: huge}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized content, got %v", err)
	}
}

func TestPostService_Delete_AuthorOnly(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, nil, zerolog.Nop())

	post, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: "mine"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, "someone-else", false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-author, got %v", err)
	}
	if err := svc.Delete(context.Background(), post.ID, "user-1", false); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
}

func TestPostService_Delete_AdminOverride(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, nil, zerolog.Nop())

	post, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: "flagged"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, "moderator-9", true); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestPostService_Delete_Missing(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), "no-such-post", "user-1", true); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Create_RecordsAudit(t *testing.T) {
	audit := &recordedAudit{}
	svc := NewPostService(newStubPostRepo(), audit, zerolog.Nop())

	post, err := svc.Create(context.Background(), testAuthor(), ports.CreatePostInput{Content: "audited"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != domain.AuditPostCreated || entry.ActorID != "user-1" || entry.TargetID != post.ID {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
}
