package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// FeedHandler serves the merged activity feed. The feed is public; an
// authenticated caller gets the same content (personalisation is client-side).
type FeedHandler struct {
	service ports.FeedService
}

func NewFeedHandler(service ports.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) Feed(c echo.Context) error {
	_, limit := pagination(c)
	items, err := h.service.Feed(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, items)
}
