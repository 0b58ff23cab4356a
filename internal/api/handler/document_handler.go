package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/ports"
)

// DocumentHandler exposes regulatory documents.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type documentRequest struct {
	Title       bilingualRequest `json:"title" validate:"required"`
	Description bilingualRequest `json:"description" validate:"required"`
	Year        int              `json:"year" validate:"required,min=2000"`
	FileURL     string           `json:"file_url" validate:"required"`
	FileSize    string           `json:"file_size"`
	Category    string           `json:"category" validate:"required"`
}

func (r documentRequest) toInput() ports.DocumentInput {
	return ports.DocumentInput{
		Title:       r.Title.toDomain(),
		Description: r.Description.toDomain(),
		Year:        r.Year,
		FileURL:     r.FileURL,
		FileSize:    r.FileSize,
		Category:    r.Category,
	}
}

// List handles GET /api/regulasi — newest year first.
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create handles POST /api/admin/regulasi.
func (h *DocumentHandler) Create(c echo.Context) error {
	var req documentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doc, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

// Update handles PUT /api/admin/regulasi/:id.
func (h *DocumentHandler) Update(c echo.Context) error {
	var req documentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doc, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Delete handles DELETE /api/admin/regulasi/:id.
func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Document deleted successfully"})
}
