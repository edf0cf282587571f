// Package cache guarda dashboards já calculados por chave de filtros.
package cache

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks

// DashboardCache é o cache de dashboards. Get retorna (nil, nil) em caso de miss.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*domain.Dashboard, error)
	Set(ctx context.Context, key string, dashboard *domain.Dashboard) error
	InvalidateAll(ctx context.Context) error
}
