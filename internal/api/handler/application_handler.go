package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/api/metrics"
	"github.com/bumdes-sale/backend/internal/api/middleware"
	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// ApplicationHandler exposes the capital application lifecycle: the
// public submits and checks status, admins list and review.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applicationRequest struct {
	ApplicantName string `json:"applicant_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	BusinessType  string `json:"business_type" validate:"required"`
	LoanAmount    string `json:"loan_amount" validate:"required"`
	Purpose       string `json:"purpose" validate:"required"`
}

type reviewRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

// Submit handles POST /api/permodalan/apply. New applications start pending.
//
// @Summary      Submit a capital application
// @Tags         capital
// @Accept       json
// @Produce      json
// @Param        body  body      applicationRequest  true  "Application form"
// @Success      201   {object}  domain.CapitalApplication
// @Router       /api/permodalan/apply [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req applicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.service.Submit(c.Request().Context(), ports.ApplicationInput{
		ApplicantName: req.ApplicantName,
		Phone:         req.Phone,
		Email:         req.Email,
		BusinessType:  req.BusinessType,
		LoanAmount:    req.LoanAmount,
		Purpose:       req.Purpose,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// Get handles GET /api/permodalan/status/:id (public status check) and
// GET /api/admin/permodalan/:id.
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// ListAll handles GET /api/admin/permodalan.
func (h *ApplicationHandler) ListAll(c echo.Context) error {
	apps, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Review handles PUT /api/admin/permodalan/:id/approve. The decision,
// reviewer and timestamp are stamped on the application; reviewing an
// already-reviewed application overwrites the previous decision.
func (h *ApplicationHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	app, err := h.service.Review(c.Request().Context(), c.Param("id"), ports.ReviewInput{
		Status:     domain.ApplicationStatus(req.Status),
		AdminNotes: req.AdminNotes,
		ReviewerID: user.ID,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsReviewedTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, app)
}
