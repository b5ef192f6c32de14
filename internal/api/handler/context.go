package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/api/middleware"
	"github.com/empowerup/empowerup-api/internal/core/domain"
)

// currentUser extracts the principal injected by the resolver middleware and
// fast-fails with ErrNotAuthenticated when it is missing. Its presence proves
// the middleware ran on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUser).(*domain.User)
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// optionalUser returns the principal if one was resolved, else nil.
func optionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.ContextUser).(*domain.User)
	return user
}
