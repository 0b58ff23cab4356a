package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ResourceHandler exposes educational resources.
type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

type resourceRequest struct {
	Title       bilingualRequest `json:"title" validate:"required"`
	Description bilingualRequest `json:"description" validate:"required"`
	Content     bilingualRequest `json:"content" validate:"required"`
	Type        string           `json:"type" validate:"required,oneof=article video guide training"`
	ResourceURL string           `json:"resource_url"`
	// Resources publish immediately unless the payload says otherwise.
	IsPublished *bool `json:"is_published"`
}

func (r resourceRequest) toInput() ports.ResourceInput {
	in := ports.ResourceInput{
		Title:       r.Title.toDomain(),
		Description: r.Description.toDomain(),
		Content:     r.Content.toDomain(),
		Type:        domain.ResourceType(r.Type),
		ResourceURL: r.ResourceURL,
		IsPublished: true,
	}
	if r.IsPublished != nil {
		in.IsPublished = *r.IsPublished
	}
	return in
}

// List handles GET /api/edukasi — published resources only.
func (h *ResourceHandler) List(c echo.Context) error {
	resources, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// Get handles GET /api/edukasi/:id. Unpublished resources read as 404.
func (h *ResourceHandler) Get(c echo.Context) error {
	resource, err := h.service.GetPublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resource)
}

// ListAll handles GET /api/admin/edukasi/all — drafts included.
func (h *ResourceHandler) ListAll(c echo.Context) error {
	resources, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resources)
}

// Create handles POST /api/admin/edukasi.
func (h *ResourceHandler) Create(c echo.Context) error {
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resource, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resource)
}

// Update handles PUT /api/admin/edukasi/:id.
func (h *ResourceHandler) Update(c echo.Context) error {
	var req resourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resource, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resource)
}

// Delete handles DELETE /api/admin/edukasi/:id.
func (h *ResourceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Resource deleted successfully"})
}
