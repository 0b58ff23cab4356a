package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
)

// Static figures shown on the dashboard, carried over from the site
// content until partner/member tracking exists.
const (
	staticPartners       = 45
	staticCitizensServed = 850
)

const defaultStatsCacheTTL = 30 * time.Second

// DashboardService aggregates collection counts for the admin dashboard.
// Results are cached briefly; a cache failure never fails the request.
type DashboardService struct {
	units        ports.DocumentStore[domain.BusinessUnit]
	products     ports.DocumentStore[domain.Product]
	applications ports.DocumentStore[domain.CapitalApplication]
	news         ports.DocumentStore[domain.News]
	messages     ports.DocumentStore[domain.ContactMessage]
	reports      ports.DocumentStore[domain.FinancialReport]
	cache        ports.StatsCache
	cacheTTL     time.Duration
}

func NewDashboardService(
	units ports.DocumentStore[domain.BusinessUnit],
	products ports.DocumentStore[domain.Product],
	applications ports.DocumentStore[domain.CapitalApplication],
	news ports.DocumentStore[domain.News],
	messages ports.DocumentStore[domain.ContactMessage],
	reports ports.DocumentStore[domain.FinancialReport],
	cache ports.StatsCache,
	cacheTTL time.Duration,
) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = defaultStatsCacheTTL
	}
	return &DashboardService{
		units:        units,
		products:     products,
		applications: applications,
		news:         news,
		messages:     messages,
		reports:      reports,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	activeUnits, err := s.units.Count(ctx, ports.Filter{"status": domain.UnitStatusActive})
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	pendingApplications, err := s.applications.Count(ctx, ports.Filter{"status": domain.ApplicationPending})
	if err != nil {
		return nil, err
	}
	publishedNews, err := s.news.Count(ctx, ports.Filter{"is_published": true})
	if err != nil {
		return nil, err
	}
	newMessages, err := s.messages.Count(ctx, ports.Filter{"status": domain.MessageNew})
	if err != nil {
		return nil, err
	}

	revenue, err := s.totalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalRevenue:        revenue,
		ActiveUnits:         activeUnits,
		Partners:            staticPartners,
		CitizensServed:      staticCitizensServed,
		PendingApplications: pendingApplications,
		TotalProducts:       totalProducts,
		PublishedNews:       publishedNews,
		ContactMessages:     newMessages,
	}

	if s.cache != nil {
		s.cache.Set(ctx, stats, s.cacheTTL)
	}
	return stats, nil
}

// totalRevenue formats the income of the most recent report. The formula
// matches the figure the site has always displayed.
func (s *DashboardService) totalRevenue(ctx context.Context) (string, error) {
	latest, err := s.reports.Find(ctx, ports.Query{
		Sort:  []ports.SortField{{Key: "year", Desc: true}, {Key: "quarter", Desc: true}},
		Limit: 1,
	})
	if err != nil {
		return "", err
	}
	if len(latest) == 0 {
		return "Rp 0", nil
	}
	return fmt.Sprintf("Rp %.1f Miliar", latest[0].Income/1_000_000), nil
}
