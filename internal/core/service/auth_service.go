package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/empowerup/empowerup-api/internal/auth"
	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// AuthService implements registration, login and logout. Login issues both a
// bearer token (API clients) and a server-side session (browsers); either is
// sufficient to authenticate later requests.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	userCodec  *auth.Codec
	adminCodec *auth.Codec
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	userCodec, adminCodec *auth.Codec,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		userCodec:  userCodec,
		adminCodec: adminCodec,
		audit:      audit,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" || input.Handle == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Handle:       input.Handle,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Bio:          input.Bio,
		Company:      input.Company,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEntry{ActorID: created.ID, Action: domain.AuditUserRegistered, Detail: created.Handle})
	s.logger.Info().Str("user_id", created.ID).Str("handle", created.Handle).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email and a wrong password must be indistinguishable.
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.userCodec.Encode(user.ID, false)
	if err != nil {
		return nil, err
	}

	// A failed session write must not block token-based clients; browsers
	// will simply fall back to the bearer token.
	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("session create failed, issuing token only")
		sessionID = ""
	}

	s.record(domain.AuditEntry{ActorID: user.ID, Action: domain.AuditUserLoggedIn})
	return &ports.LoginResult{Token: token, SessionID: sessionID, User: user}, nil
}

// AdminLogin authenticates an admin account and issues a token signed with the
// admin secret. Any non-admin account fails with ErrInvalidCredentials: the
// response must not reveal whether the account exists at all.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsAdmin() {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.adminCodec.Encode(user.ID, true)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) record(entry domain.AuditEntry) {
	if s.audit != nil {
		s.audit.Record(entry)
	}
}
