package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// MemoryDashboardCache é o cache local usado quando o redis não está configurado
type MemoryDashboardCache struct {
	cache *lru.LRU[string, *domain.Dashboard]
}

func NewMemoryDashboardCache(size int, ttl time.Duration) *MemoryDashboardCache {
	if size <= 0 {
		size = 256
	}

	return &MemoryDashboardCache{
		cache: lru.NewLRU[string, *domain.Dashboard](size, nil, ttl),
	}
}

func (c *MemoryDashboardCache) Get(_ context.Context, key string) (*domain.Dashboard, error) {
	dashboard, ok := c.cache.Get(key)
	if !ok {
		return nil, nil
	}
	return dashboard, nil
}

func (c *MemoryDashboardCache) Set(_ context.Context, key string, dashboard *domain.Dashboard) error {
	c.cache.Add(key, dashboard)
	return nil
}

func (c *MemoryDashboardCache) InvalidateAll(_ context.Context) error {
	c.cache.Purge()
	return nil
}
