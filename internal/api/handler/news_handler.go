package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/api/middleware"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// NewsHandler exposes news articles. Public routes only see published
// articles; admins see everything.
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

type newsRequest struct {
	Title    bilingualRequest `json:"title" validate:"required"`
	Excerpt  bilingualRequest `json:"excerpt" validate:"required"`
	Content  bilingualRequest `json:"content" validate:"required"`
	Category string           `json:"category" validate:"required"`
	ImageURL string           `json:"image_url"`
	// Articles publish immediately unless the payload says otherwise.
	IsPublished *bool `json:"is_published"`
}

func (r newsRequest) toInput() ports.NewsInput {
	in := ports.NewsInput{
		Title:       r.Title.toDomain(),
		Excerpt:     r.Excerpt.toDomain(),
		Content:     r.Content.toDomain(),
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		IsPublished: true,
	}
	if r.IsPublished != nil {
		in.IsPublished = *r.IsPublished
	}
	return in
}

// List handles GET /api/berita — published articles, newest first.
func (h *NewsHandler) List(c echo.Context) error {
	articles, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /api/berita/:id. Unpublished articles read as 404.
func (h *NewsHandler) Get(c echo.Context) error {
	article, err := h.service.GetPublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// ListAll handles GET /api/admin/berita/all — drafts included.
func (h *NewsHandler) ListAll(c echo.Context) error {
	articles, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Create handles POST /api/admin/berita. The authenticated admin is
// recorded as the author.
func (h *NewsHandler) Create(c echo.Context) error {
	var req newsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	article, err := h.service.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/admin/berita/:id.
func (h *NewsHandler) Update(c echo.Context) error {
	var req newsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/admin/berita/:id.
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "News deleted successfully"})
}
