package ports

import (
	"context"

	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Name     string
	Handle   string
	Email    string
	Password string
	Role     string
	Bio      string
	Company  string
}

// LoginResult is what a successful login hands back to the transport layer:
// a bearer token for API clients plus a server-side session for browsers.
type LoginResult struct {
	Token     string
	SessionID string
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// AdminLogin authenticates an admin account and issues a token signed with
	// the admin secret. Non-admin accounts fail with ErrInvalidCredentials.
	AdminLogin(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
}
