package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ProductHandler exposes the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name        bilingualRequest  `json:"name" validate:"required"`
	Category    string            `json:"category" validate:"required"`
	Price       string            `json:"price" validate:"required"`
	Description *bilingualRequest `json:"description"`
	StockStatus string            `json:"stock_status" validate:"omitempty,oneof=Tersedia Pre-order Habis"`
	ImageURL    string            `json:"image_url"`
}

func (r productRequest) toInput() ports.ProductInput {
	in := ports.ProductInput{
		Name:        r.Name.toDomain(),
		Category:    r.Category,
		Price:       r.Price,
		StockStatus: domain.StockStatus(r.StockStatus),
		ImageURL:    r.ImageURL,
	}
	if in.StockStatus == "" {
		in.StockStatus = domain.StockAvailable
	}
	if r.Description != nil {
		desc := r.Description.toDomain()
		in.Description = &desc
	}
	return in
}

// List handles GET /api/produk.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/produk/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/admin/produk.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/admin/produk/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/admin/produk/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
