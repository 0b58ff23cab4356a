package ports

import (
	"context"
	"time"

	"github.com/bumdes-sale/backend/internal/core/domain"
)

// StatsCache is a short-lived cache for the dashboard aggregate.
// Implementations fail open: a cache error never fails the request.
type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, bool)
	Set(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration)
}

// DashboardService produces the admin dashboard aggregate.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
