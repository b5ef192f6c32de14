package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/empowerup/empowerup-api/internal/api/metrics"
	"github.com/empowerup/empowerup-api/internal/core/ports"
)

// PostHandler handles HTTP requests for community posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Content  string `json:"content" validate:"required,max=5000"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// Create publishes a new post as the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), user, ports.CreatePostInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("post").Inc()
	return respond(c, http.StatusCreated, post)
}

// List returns posts, newest first, paginated.
func (h *PostHandler) List(c echo.Context) error {
	page, limit := pagination(c)
	posts, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, posts)
}

// Get returns a single post by id.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, post)
}

// Delete removes a post owned by the caller (admins may delete any post).
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID, user.IsAdmin()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "post deleted"})
}
