package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// EventHandler handles HTTP requests for community events.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type createEventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Location    string    `json:"location" validate:"max=200"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
}

// Create schedules a new event organized by the authenticated user.
func (h *EventHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		OrganizerID: user.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("event").Inc()
	return respond(c, http.StatusCreated, event)
}

// List returns upcoming events, soonest first.
func (h *EventHandler) List(c echo.Context) error {
	_, limit := pagination(c)
	events, err := h.service.ListUpcoming(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, events)
}
