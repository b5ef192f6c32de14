package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// GroupHandler handles HTTP requests for community groups.
type GroupHandler struct {
	service ports.GroupService
}

func NewGroupHandler(service ports.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

type createGroupRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"max=1000"`
}

// Create founds a new group owned by the authenticated user.
func (h *GroupHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.service.Create(c.Request().Context(), ports.CreateGroupInput{
		OwnerID:     user.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("group").Inc()
	return respond(c, http.StatusCreated, group)
}

// List returns groups, newest first, paginated.
func (h *GroupHandler) List(c echo.Context) error {
	page, limit := pagination(c)
	groups, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, groups)
}

// Join adds the authenticated user to a group. Joining twice is a no-op.
func (h *GroupHandler) Join(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Join(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "joined group"})
}

// Leave removes the authenticated user from a group.
func (h *GroupHandler) Leave(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Leave(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "left group"})
}
