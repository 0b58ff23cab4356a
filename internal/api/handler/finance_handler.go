package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// FinanceHandler exposes financial transparency: quarterly reports and
// yearly SHU distributions.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

type reportRequest struct {
	Period      string  `json:"period" validate:"required"`
	Quarter     int     `json:"quarter" validate:"required,min=1,max=4"`
	Year        int     `json:"year" validate:"required,min=2000"`
	Income      float64 `json:"income" validate:"gte=0"`
	Expense     float64 `json:"expense" validate:"gte=0"`
	Profit      float64 `json:"profit"`
	AuditStatus string  `json:"audit_status" validate:"omitempty,oneof=pending audited"`
	PDFURL      string  `json:"pdf_url"`
}

func (r reportRequest) toInput() ports.ReportInput {
	in := ports.ReportInput{
		Period:      r.Period,
		Quarter:     r.Quarter,
		Year:        r.Year,
		Income:      r.Income,
		Expense:     r.Expense,
		Profit:      r.Profit,
		AuditStatus: domain.AuditStatus(r.AuditStatus),
		PDFURL:      r.PDFURL,
	}
	if in.AuditStatus == "" {
		in.AuditStatus = domain.AuditPending
	}
	return in
}

type shuRequest struct {
	Year             int       `json:"year" validate:"required,min=2000"`
	TotalAmount      float64   `json:"total_amount" validate:"gte=0"`
	MemberCount      int       `json:"member_count" validate:"gte=0"`
	PerMember        float64   `json:"per_member" validate:"gte=0"`
	DistributionDate time.Time `json:"distribution_date" validate:"required"`
}

// ListReports handles GET /api/transparansi/reports — newest period first.
func (h *FinanceHandler) ListReports(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// CreateReport handles POST /api/admin/transparansi/reports.
func (h *FinanceHandler) CreateReport(c echo.Context) error {
	var req reportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.service.CreateReport(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}

// UpdateReport handles PUT /api/admin/transparansi/reports/:id.
func (h *FinanceHandler) UpdateReport(c echo.Context) error {
	var req reportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.service.UpdateReport(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// ListSHU handles GET /api/transparansi/shu — newest year first.
func (h *FinanceHandler) ListSHU(c echo.Context) error {
	records, err := h.service.ListSHU(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// CreateSHU handles POST /api/admin/transparansi/shu.
func (h *FinanceHandler) CreateSHU(c echo.Context) error {
	var req shuRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.service.CreateSHU(c.Request().Context(), ports.SHUInput{
		Year:             req.Year,
		TotalAmount:      req.TotalAmount,
		MemberCount:      req.MemberCount,
		PerMember:        req.PerMember,
		DistributionDate: req.DistributionDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}
