package service

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// FinanceService manages financial reports and SHU distributions.
type FinanceService struct {
	reports ports.DocumentStore[domain.FinancialReport]
	shu     ports.DocumentStore[domain.SHUDistribution]
}

func NewFinanceService(
	reports ports.DocumentStore[domain.FinancialReport],
	shu ports.DocumentStore[domain.SHUDistribution],
) *FinanceService {
	return &FinanceService{reports: reports, shu: shu}
}

func (s *FinanceService) ListReports(ctx context.Context) ([]*domain.FinancialReport, error) {
	return s.reports.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "year", Desc: true}, {Key: "quarter", Desc: true}},
		Limit: publicListLimit,
	})
}

func (s *FinanceService) CreateReport(ctx context.Context, in ports.ReportInput) (*domain.FinancialReport, error) {
	now := time.Now().UTC()
	report := &domain.FinancialReport{
		Period:      in.Period,
		Quarter:     in.Quarter,
		Year:        in.Year,
		Income:      in.Income,
		Expense:     in.Expense,
		Profit:      in.Profit,
		AuditStatus: in.AuditStatus,
		PDFURL:      in.PDFURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := s.reports.Insert(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id
	return report, nil
}

func (s *FinanceService) UpdateReport(ctx context.Context, id string, in ports.ReportInput) (*domain.FinancialReport, error) {
	patch := ports.Fields{
		"period":       in.Period,
		"quarter":      in.Quarter,
		"year":         in.Year,
		"income":       in.Income,
		"expense":      in.Expense,
		"profit":       in.Profit,
		"audit_status": in.AuditStatus,
		"pdf_url":      in.PDFURL,
		"updated_at":   time.Now().UTC(),
	}
	if err := s.reports.UpdateByID(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.reports.FindByID(ctx, id)
}

func (s *FinanceService) ListSHU(ctx context.Context) ([]*domain.SHUDistribution, error) {
	return s.shu.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "year", Desc: true}},
		Limit: publicListLimit,
	})
}

func (s *FinanceService) CreateSHU(ctx context.Context, in ports.SHUInput) (*domain.SHUDistribution, error) {
	now := time.Now().UTC()
	dist := &domain.SHUDistribution{
		Year:             in.Year,
		TotalAmount:      in.TotalAmount,
		MemberCount:      in.MemberCount,
		PerMember:        in.PerMember,
		DistributionDate: in.DistributionDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	id, err := s.shu.Insert(ctx, dist)
	if err != nil {
		return nil, err
	}
	dist.ID = id
	return dist, nil
}
