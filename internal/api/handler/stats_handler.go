package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// StatsHandler serves the admin dashboard aggregates. Routes using it are
// guarded by the admin-token resolver.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard returns entity counts and recent audit activity.
//
// @Summary      Admin dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /v1/admin/stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats)
}
