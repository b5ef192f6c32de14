package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/core/domain"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// AuthHandler implements registration, login/logout and the current-user
// endpoint. Login hands browsers a session cookie and API clients a bearer
// token in the same response.
type AuthHandler struct {
	service        ports.AuthService
	cookieName     string
	cookieTTL      time.Duration
	cookieSecure   bool
	cookieSameSite http.SameSite
}

func NewAuthHandler(service ports.AuthService, cookieName string, cookieTTL time.Duration, cookieSecure bool, sameSite http.SameSite) *AuthHandler {
	return &AuthHandler{
		service:        service,
		cookieName:     cookieName,
		cookieTTL:      cookieTTL,
		cookieSecure:   cookieSecure,
		cookieSameSite: sameSite,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Handle   string `json:"handle" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=entrepreneur client"`
	Bio      string `json:"bio" validate:"max=500"`
	Company  string `json:"company" validate:"max=120"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Handle:   req.Handle,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Bio:      req.Bio,
		Company:  req.Company,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, user)
}

// Login authenticates a user, issuing a bearer token and a session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	if result.SessionID != "" {
		c.SetCookie(h.sessionCookie(result.SessionID, h.cookieTTL))
	}
	return respond(c, http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// AdminLogin authenticates an admin account against the admin secret.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /v1/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"token": token})
}

// Logout destroys the caller's session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "logged out"})
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.cookieSameSite,
	}
	// Browsers reject SameSite=None cookies that are not Secure.
	if cookie.SameSite == http.SameSiteNoneMode {
		cookie.Secure = true
	}
	if ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
	} else {
		cookie.MaxAge = -1
	}
	return cookie
}
