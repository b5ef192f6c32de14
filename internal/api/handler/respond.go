package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// envelope is the platform's JSON response shape. Failures use the same shape
// with Success=false and a Message; see the central error handler.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pagination reads page/limit query params, clamping both to sane bounds.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
