package analyzing

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// RecordSource é a fonte upstream de registros (API de anúncios ou dados sintéticos)
type RecordSource interface {
	// GetRecords retorna os registros diários dentro do intervalo
	GetRecords(ctx context.Context, timeRange domain.TimeRange) ([]domain.AnalyticsRecord, error)
}

// Analyzer é a interface completa do serviço de analytics
type Analyzer interface {
	ValidateFilters(filters *domain.AnalyticsFilters) domain.ValidationResult

	// ResolveTimeRange transforma período ou datas explícitas em um intervalo concreto
	ResolveTimeRange(filters *domain.AnalyticsFilters) (domain.TimeRange, error)

	GetRecords(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.AnalyticsRecord, domain.TimeRange, error)
	GetDashboard(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Dashboard, error)

	// GetRealtime recalcula o dashboard no máximo uma vez por intervalo de throttle
	GetRealtime(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Dashboard, error)

	GetTimeSeries(ctx context.Context, filters *domain.AnalyticsFilters, metric string) ([]domain.ChartPoint, error)
	GetTrends(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.TrendResult, error)
	ComparePeriods(ctx context.Context, current, previous *domain.AnalyticsFilters) ([]domain.ComparisonResult, error)
	GetInsights(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.Insight, error)
	GetScore(ctx context.Context, filters *domain.AnalyticsFilters) (float64, error)

	GetCampaignAnalytics(ctx context.Context, campaignID string, filters *domain.AnalyticsFilters) (*domain.CampaignAnalytics, error)
	GetContentAnalytics(ctx context.Context, contentID string, filters *domain.AnalyticsFilters) (*domain.ContentAnalytics, error)
}
