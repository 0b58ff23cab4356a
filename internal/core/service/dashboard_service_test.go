package service

import (
	"context"
	"testing"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

type stubStatsCache struct {
	cached *domain.DashboardStats
	set    *domain.DashboardStats
	setTTL time.Duration
}

func (c *stubStatsCache) Get(_ context.Context) (*domain.DashboardStats, bool) {
	if c.cached == nil {
		return nil, false
	}
	return c.cached, true
}

func (c *stubStatsCache) Set(_ context.Context, stats *domain.DashboardStats, ttl time.Duration) {
	c.set = stats
	c.setTTL = ttl
}

func newDashboardFixture() (*DashboardService, *stubStore[domain.FinancialReport], *stubStatsCache) {
	units := newStubStore[domain.BusinessUnit]()
	units.count = 6
	products := newStubStore[domain.Product]()
	products.count = 12
	applications := newStubStore[domain.CapitalApplication]()
	applications.count = 3
	news := newStubStore[domain.News]()
	news.count = 5
	messages := newStubStore[domain.ContactMessage]()
	messages.count = 2
	reports := newStubStore[domain.FinancialReport]()
	cache := &stubStatsCache{}

	svc := NewDashboardService(units, products, applications, news, messages, reports, cache, 0)
	return svc, reports, cache
}

func TestDashboardService_Stats(t *testing.T) {
	svc, reports, cache := newDashboardFixture()
	reports.findResult = []*domain.FinancialReport{
		{Period: "Q1 2025", Quarter: 1, Year: 2025, Income: 625000000},
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.ActiveUnits != 6 {
		t.Fatalf("expected 6 active units, got %d", stats.ActiveUnits)
	}
	if stats.TotalProducts != 12 {
		t.Fatalf("expected 12 products, got %d", stats.TotalProducts)
	}
	if stats.PendingApplications != 3 {
		t.Fatalf("expected 3 pending applications, got %d", stats.PendingApplications)
	}
	if stats.PublishedNews != 5 {
		t.Fatalf("expected 5 published news, got %d", stats.PublishedNews)
	}
	if stats.ContactMessages != 2 {
		t.Fatalf("expected 2 new messages, got %d", stats.ContactMessages)
	}
	if stats.Partners != staticPartners || stats.CitizensServed != staticCitizensServed {
		t.Fatalf("unexpected static figures: %+v", stats)
	}
	if stats.TotalRevenue != "Rp 625.0 Miliar" {
		t.Fatalf("unexpected revenue string: %q", stats.TotalRevenue)
	}

	if cache.set == nil {
		t.Fatalf("expected stats to be cached")
	}
	if cache.setTTL != defaultStatsCacheTTL {
		t.Fatalf("unexpected cache ttl: %v", cache.setTTL)
	}
}

func TestDashboardService_Stats_NoReports(t *testing.T) {
	svc, _, _ := newDashboardFixture()

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.TotalRevenue != "Rp 0" {
		t.Fatalf("expected Rp 0 with no reports, got %q", stats.TotalRevenue)
	}
}

func TestDashboardService_Stats_CacheHit(t *testing.T) {
	svc, reports, cache := newDashboardFixture()
	cache.cached = &domain.DashboardStats{TotalRevenue: "Rp 1.0 Miliar", ActiveUnits: 99}
	reports.findErr = domain.ErrNotFound // stores must not be touched on a hit

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.ActiveUnits != 99 {
		t.Fatalf("expected cached stats, got %+v", stats)
	}
}
