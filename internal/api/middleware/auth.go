package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/auth"
	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// Context keys set by the resolver middleware.
const (
	ContextUser        = "user"
	ContextUserID      = "user_id"
	ContextAdminUserID = "admin_user_id"
)

// Fallback header consulted when a reverse proxy strips Authorization.
const forwardedAuthHeader = "X-Forwarded-Authorization"

// Resolver determines the acting principal for a request. Two strategies
// exist, bearer token and server-side session, tried in that order by the
// hybrid resolvers. Strategies never surface internal faults to the client:
// every failure collapses to "not authenticated", with the underlying cause
// going to the operational log only.
type Resolver struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	userCodec  *auth.Codec
	adminCodec *auth.Codec
	cookieName string
	log        zerolog.Logger
}

func NewResolver(
	users ports.UserRepository,
	sessions ports.SessionStore,
	userCodec, adminCodec *auth.Codec,
	cookieName string,
	log zerolog.Logger,
) *Resolver {
	return &Resolver{
		users:      users,
		sessions:   sessions,
		userCodec:  userCodec,
		adminCodec: adminCodec,
		cookieName: cookieName,
		log:        log,
	}
}

// RequireUser resolves the acting user via token-then-session and halts with
// 401 when neither strategy yields a principal.
func (r *Resolver) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := r.resolveHybrid(c)
			if user == nil {
				metrics.AuthResolutionsTotal.WithLabelValues("denied").Inc()
				return domain.ErrNotAuthenticated
			}
			setUser(c, user)
			return next(c)
		}
	}
}

// OptionalUser resolves the acting user if possible but never halts: handlers
// see either a principal on the context or nothing.
func (r *Resolver) OptionalUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := r.resolveHybrid(c); user != nil {
				setUser(c, user)
			}
			return next(c)
		}
	}
}

// RequireAdmin resolves exclusively via a bearer token verified against the
// admin secret with a truthy admin claim. No store lookup happens: admin
// identity is asserted by the signature alone.
func (r *Resolver) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := BearerToken(c.Request().Header)
			if !ok {
				return domain.ErrNotAuthenticated
			}

			claims, err := r.adminCodec.Decode(raw)
			if err != nil {
				r.log.Debug().Err(err).Msg("admin token rejected")
				return domain.ErrNotAuthenticated
			}
			if !claims.Admin {
				return domain.ErrNotAuthenticated
			}

			c.Set(ContextAdminUserID, claims.UserID)
			return next(c)
		}
	}
}

// RequireSession resolves exclusively via the server-side session.
func (r *Resolver) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := r.resolveSession(c)
			if user == nil {
				return domain.ErrNotAuthenticated
			}
			setUser(c, user)
			return next(c)
		}
	}
}

// resolveHybrid tries the bearer-token strategy first, then the session
// strategy. Token wins when both are present.
func (r *Resolver) resolveHybrid(c echo.Context) *domain.User {
	if user := r.resolveToken(c); user != nil {
		metrics.AuthResolutionsTotal.WithLabelValues("token").Inc()
		return user
	}
	if user := r.resolveSession(c); user != nil {
		metrics.AuthResolutionsTotal.WithLabelValues("session").Inc()
		return user
	}
	return nil
}

// resolveToken decodes the bearer token and re-fetches the referenced user.
// A valid signature alone is not enough: if the account was deleted after the
// token was issued, resolution fails immediately.
func (r *Resolver) resolveToken(c echo.Context) *domain.User {
	raw, ok := BearerToken(c.Request().Header)
	if !ok {
		return nil
	}

	claims, err := r.userCodec.Decode(raw)
	if err != nil {
		r.log.Debug().Err(err).Msg("bearer token rejected")
		return nil
	}

	user, err := r.users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.log.Debug().Str("user_id", claims.UserID).Msg("token references deleted account")
		} else {
			r.log.Error().Err(err).Msg("credential store lookup failed during token resolution")
		}
		return nil
	}
	return user
}

// resolveSession reads the session cookie and re-fetches the referenced user.
// A session pointing at a deleted account is destroyed on the spot.
func (r *Resolver) resolveSession(c echo.Context) *domain.User {
	cookie, err := c.Cookie(r.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	ctx := c.Request().Context()

	userID, err := r.sessions.Get(ctx, cookie.Value)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			r.log.Error().Err(err).Msg("session store lookup failed")
		}
		return nil
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Stale session: lazy cleanup, best effort.
			if delErr := r.sessions.Delete(ctx, cookie.Value); delErr != nil {
				r.log.Warn().Err(delErr).Msg("stale session cleanup failed")
			}
		} else {
			r.log.Error().Err(err).Msg("credential store lookup failed during session resolution")
		}
		return nil
	}
	return user
}

// BearerToken extracts the token from the Authorization header, falling back
// to X-Forwarded-Authorization for reverse proxies that rewrite the original.
// Header-name casing is normalised by net/http; the "Bearer" scheme match is
// case-insensitive.
func BearerToken(h http.Header) (string, bool) {
	value := h.Get(echo.HeaderAuthorization)
	if value == "" {
		value = h.Get(forwardedAuthHeader)
	}
	if value == "" {
		return "", false
	}

	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setUser(c echo.Context, user *domain.User) {
	c.Set(ContextUser, user)
	c.Set(ContextUserID, user.ID)
}
