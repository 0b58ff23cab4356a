package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// UnitHandler exposes business units: public listing and detail plus
// admin CRUD.
type UnitHandler struct {
	service ports.UnitService
}

func NewUnitHandler(service ports.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

type unitRequest struct {
	Name        bilingualRequest `json:"name" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Description bilingualRequest `json:"description" validate:"required"`
	Revenue     string           `json:"revenue" validate:"required"`
	Contact     string           `json:"contact"`
	TeamSize    int              `json:"team_size" validate:"gte=0"`
	Status      string           `json:"status"`
}

func (r unitRequest) toInput() ports.UnitInput {
	in := ports.UnitInput{
		Name:        r.Name.toDomain(),
		Category:    r.Category,
		Description: r.Description.toDomain(),
		Revenue:     r.Revenue,
		Contact:     r.Contact,
		TeamSize:    r.TeamSize,
		Status:      r.Status,
	}
	if in.Status == "" {
		in.Status = domain.UnitStatusActive
	}
	return in
}

// List handles GET /api/unit-usaha — active units only.
//
// @Summary      List active business units
// @Tags         business-units
// @Produce      json
// @Success      200  {array}  domain.BusinessUnit
// @Router       /api/unit-usaha [get]
func (h *UnitHandler) List(c echo.Context) error {
	units, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// Get handles GET /api/unit-usaha/:id.
func (h *UnitHandler) Get(c echo.Context) error {
	unit, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Create handles POST /api/admin/unit-usaha.
func (h *UnitHandler) Create(c echo.Context) error {
	var req unitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unit, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, unit)
}

// Update handles PUT /api/admin/unit-usaha/:id.
func (h *UnitHandler) Update(c echo.Context) error {
	var req unitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	unit, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Delete handles DELETE /api/admin/unit-usaha/:id.
func (h *UnitHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Business unit deleted successfully"})
}
