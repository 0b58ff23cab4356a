package ports

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// ReportInput carries the mutable fields of a financial report.
type ReportInput struct {
	Period      string
	Quarter     int
	Year        int
	Income      float64
	Expense     float64
	Profit      float64
	AuditStatus domain.AuditStatus
	PDFURL      string
}

// SHUInput carries the mutable fields of a surplus distribution record.
type SHUInput struct {
	Year             int
	TotalAmount      float64
	MemberCount      int
	PerMember        float64
	DistributionDate time.Time
}

// FinanceService manages financial reports and SHU distributions.
// Reports are listed newest first (year, then quarter); SHU by year.
type FinanceService interface {
	ListReports(ctx context.Context) ([]*domain.FinancialReport, error)
	CreateReport(ctx context.Context, in ReportInput) (*domain.FinancialReport, error)
	UpdateReport(ctx context.Context, id string, in ReportInput) (*domain.FinancialReport, error)
	ListSHU(ctx context.Context) ([]*domain.SHUDistribution, error)
	CreateSHU(ctx context.Context, in SHUInput) (*domain.SHUDistribution, error)
}
