package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/ports"
)

// DashboardHandler exposes the admin dashboard aggregate.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/admin/dashboard/stats.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
