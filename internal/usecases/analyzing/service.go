package analyzing

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
	"github.com/vfg2006/campaign-analytics-api/pkg/ratelimit"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches limita as buscas simultâneas de dias faltantes na fonte
const maxConcurrentFetches = 5

// ratioMetrics não podem ser somadas; nos totais são recalculadas ou tiradas da média
var ratioMetrics = []string{domain.MetricCTR, domain.MetricCPC, domain.MetricCPM, domain.MetricROI, domain.MetricEngagement}

// Service implementa Analyzer sobre uma fonte de registros
type Service struct {
	source         RecordSource
	recordStore    repository.AnalyticsRecordRepository
	dashboardCache cache.DashboardCache
	insights       *InsightGenerator
	throttler      *ratelimit.Throttler
	metrics        *metrics.Metrics
	now            func() time.Time

	// último dashboard por chave, válido enquanto o throttle da chave segura
	snapshots *lru.LRU[string, *domain.Dashboard]
}

// NewService cria o serviço de analytics lendo diretamente da fonte
func NewService(source RecordSource, throttler *ratelimit.Throttler) *Service {
	if throttler == nil {
		throttler = ratelimit.NewThrottler(ratelimit.DefaultThrottleInterval, ratelimit.DefaultCapacity)
	}

	return &Service{
		source:    source,
		insights:  NewInsightGenerator(),
		throttler: throttler,
		now:       func() time.Time { return time.Now().UTC() },
		snapshots: lru.NewLRU[string, *domain.Dashboard](throttler.Capacity(), nil, throttler.Interval()),
	}
}

// WithRecordStore habilita o cache de registros por dia no postgres
func (s *Service) WithRecordStore(store repository.AnalyticsRecordRepository) *Service {
	s.recordStore = store
	return s
}

// WithDashboardCache habilita o cache de dashboards calculados
func (s *Service) WithDashboardCache(c cache.DashboardCache) *Service {
	s.dashboardCache = c
	return s
}

func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

func (s *Service) ValidateFilters(filters *domain.AnalyticsFilters) domain.ValidationResult {
	return ValidateFilters(filters)
}

// ResolveTimeRange usa as datas explícitas quando informadas e o período caso
// contrário. Para granularidades de dia ou maiores o início é alinhado à meia-noite,
// já que os registros são diários.
func (s *Service) ResolveTimeRange(filters *domain.AnalyticsFilters) (domain.TimeRange, error) {
	if result := ValidateFilters(filters); !result.IsValid {
		return domain.TimeRange{}, &ValidationError{Result: result}
	}

	var timeRange domain.TimeRange
	if filters != nil && filters.DateRange != nil {
		start, _ := ParseFilterDate(filters.DateRange.Start)
		end, _ := ParseFilterDate(filters.DateRange.End)
		timeRange = domain.TimeRange{Start: start, End: end, Granularity: domain.GranularityDay}
	} else {
		period := DefaultPeriod
		if filters != nil && filters.Period != "" {
			period = filters.Period
		}
		timeRange = GenerateTimeRange(period, s.now())
	}

	if filters != nil && filters.Granularity != "" {
		timeRange.Granularity = filters.Granularity
	}

	if timeRange.Granularity != domain.GranularityHour {
		timeRange.Start = time.Date(timeRange.Start.Year(), timeRange.Start.Month(), timeRange.Start.Day(), 0, 0, 0, 0, timeRange.Start.Location())
	}

	return timeRange, nil
}

// GetRecords busca os registros do intervalo e aplica os filtros de dimensão
func (s *Service) GetRecords(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.AnalyticsRecord, domain.TimeRange, error) {
	timeRange, err := s.ResolveTimeRange(filters)
	if err != nil {
		return nil, timeRange, err
	}

	records, err := s.fetchRecords(ctx, timeRange)
	if err != nil {
		return nil, timeRange, err
	}

	filtered := make([]domain.AnalyticsRecord, 0, len(records))
	for _, record := range records {
		if !filters.Matches(record) {
			continue
		}

		date, err := record.Dimensions.DateIn(timeRange.Start.Location())
		if err != nil || !timeRange.Contains(date) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered, timeRange, nil
}

func (s *Service) GetDashboard(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Dashboard, error) {
	key := filters.CacheKey()

	if s.dashboardCache != nil {
		cached, err := s.dashboardCache.Get(ctx, key)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Warn("analytics: erro ao ler dashboard do cache")
		}
		s.metrics.ObserveCache(cached != nil)
		if cached != nil {
			return cached, nil
		}
	}

	dashboard, err := s.buildDashboard(ctx, filters)
	if err != nil {
		return nil, err
	}

	if s.dashboardCache != nil {
		if err := s.dashboardCache.Set(ctx, key, dashboard); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("analytics: erro ao salvar dashboard no cache")
		}
	}

	return dashboard, nil
}

// GetRealtime devolve o último snapshot enquanto o throttle da chave não libera
// um novo cálculo
func (s *Service) GetRealtime(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Dashboard, error) {
	key := filters.CacheKey()

	if !s.throttler.Allow(key) {
		if snapshot, ok := s.snapshots.Get(key); ok {
			return snapshot, nil
		}
	}

	dashboard, err := s.buildDashboard(ctx, filters)
	if err != nil {
		return nil, err
	}

	s.snapshots.Add(key, dashboard)

	return dashboard, nil
}

func (s *Service) GetTimeSeries(ctx context.Context, filters *domain.AnalyticsFilters, metric string) ([]domain.ChartPoint, error) {
	if !domain.IsKnownMetric(metric) {
		return nil, &ValidationError{Result: domain.ValidationResult{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("Invalid metric: %s", metric)},
		}}
	}

	records, timeRange, err := s.GetRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	return Bucketize(records, metric, timeRange), nil
}

func (s *Service) GetTrends(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.TrendResult, error) {
	records, _, err := s.GetRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	return CalculateTrends(records), nil
}

// ComparePeriods busca os dois períodos em paralelo e compara as médias
func (s *Service) ComparePeriods(ctx context.Context, current, previous *domain.AnalyticsFilters) ([]domain.ComparisonResult, error) {
	var currentRecords, previousRecords []domain.AnalyticsRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, _, err := s.GetRecords(gctx, current)
		currentRecords = records
		return err
	})
	g.Go(func() error {
		records, _, err := s.GetRecords(gctx, previous)
		previousRecords = records
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ComparePeriods(currentRecords, previousRecords), nil
}

func (s *Service) GetInsights(ctx context.Context, filters *domain.AnalyticsFilters) ([]domain.Insight, error) {
	records, _, err := s.GetRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	return s.generateInsights(records), nil
}

func (s *Service) GetScore(ctx context.Context, filters *domain.AnalyticsFilters) (float64, error) {
	records, _, err := s.GetRecords(ctx, filters)
	if err != nil {
		return 0, err
	}

	return PerformanceScore(AverageMetrics(records)), nil
}

func (s *Service) GetCampaignAnalytics(ctx context.Context, campaignID string, filters *domain.AnalyticsFilters) (*domain.CampaignAnalytics, error) {
	scoped := scopeFilters(filters)
	scoped.CampaignIDs = []string{campaignID}

	records, timeRange, err := s.GetRecords(ctx, scoped)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrCampaignNotFound
	}

	analytics := &domain.CampaignAnalytics{
		CampaignID: campaignID,
		Name:       campaignID,
		Status:     "active",
		Metrics:    SummarizeMetrics(records),
		TimeRange:  &timeRange,
	}

	seen := make(map[domain.Platform]bool)
	for _, record := range records {
		if record.Dimensions.CampaignName != "" {
			analytics.Name = record.Dimensions.CampaignName
		}
		if !seen[record.Dimensions.Platform] {
			seen[record.Dimensions.Platform] = true
			analytics.Platforms = append(analytics.Platforms, record.Dimensions.Platform)
		}
	}
	analytics.Spent = analytics.Metrics.Get(domain.MetricSpend)

	return analytics, nil
}

func (s *Service) GetContentAnalytics(ctx context.Context, contentID string, filters *domain.AnalyticsFilters) (*domain.ContentAnalytics, error) {
	scoped := scopeFilters(filters)
	scoped.ContentIDs = []string{contentID}

	records, timeRange, err := s.GetRecords(ctx, scoped)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrContentNotFound
	}

	analytics := &domain.ContentAnalytics{
		ContentID: contentID,
		Title:     contentID,
		Platform:  records[0].Dimensions.Platform,
		Metrics:   SummarizeMetrics(records),
		TimeRange: &timeRange,
	}

	// O primeiro registro datado marca a publicação
	if dated := sortByDate(records); len(dated) > 0 {
		publishedAt := dated[0].date
		analytics.PublishedAt = &publishedAt
	}

	for _, record := range records {
		if record.Dimensions.ContentTitle != "" {
			analytics.Title = record.Dimensions.ContentTitle
			break
		}
	}

	return analytics, nil
}

// SummarizeMetrics soma as contagens e recalcula as razões a partir dos
// totais; razões sem valores brutos usam a média dos registros
func SummarizeMetrics(records []domain.AnalyticsRecord) domain.MetricsBundle {
	totals := SumMetrics(records)
	for _, ratio := range ratioMetrics {
		delete(totals, ratio)
	}

	domain.DeriveRatios(totals)

	averages := AverageMetrics(records)
	for _, ratio := range ratioMetrics {
		if totals.Has(ratio) {
			continue
		}
		if value, ok := averages[ratio]; ok {
			totals[ratio] = value
		}
	}

	return totals
}

func (s *Service) buildDashboard(ctx context.Context, filters *domain.AnalyticsFilters) (*domain.Dashboard, error) {
	records, timeRange, err := s.GetRecords(ctx, filters)
	if err != nil {
		return nil, err
	}

	selected := domain.MetricNames
	if filters != nil && len(filters.Metrics) > 0 {
		selected = filters.Metrics
	}

	summary := AverageMetrics(records)

	dashboard := &domain.Dashboard{
		TimeRange:   timeRange,
		Filters:     filters,
		Summary:     summary,
		Totals:      SummarizeMetrics(records),
		Series:      BucketizeAll(records, selected, timeRange),
		Trends:      CalculateTrends(records),
		Score:       PerformanceScore(summary),
		Insights:    s.generateInsights(records),
		RecordCount: len(records),
		GeneratedAt: s.now(),
	}

	logrus.WithFields(logrus.Fields{
		"records":     dashboard.RecordCount,
		"start":       timeRange.Start.Format(time.DateOnly),
		"end":         timeRange.End.Format(time.DateOnly),
		"granularity": timeRange.Granularity,
		"insights":    len(dashboard.Insights),
	}).Debug("analytics: dashboard calculado")

	return dashboard, nil
}

func (s *Service) generateInsights(records []domain.AnalyticsRecord) []domain.Insight {
	insights := s.insights.Generate(records)
	for _, insight := range insights {
		s.metrics.IncInsight(string(insight.Type))
	}
	return insights
}

// fetchRecords lê da fonte, passando pelo store de registros quando configurado
func (s *Service) fetchRecords(ctx context.Context, timeRange domain.TimeRange) ([]domain.AnalyticsRecord, error) {
	startedAt := time.Now()

	var (
		records []domain.AnalyticsRecord
		err     error
	)
	if s.recordStore != nil {
		records, err = s.fetchRecordsWithStore(ctx, timeRange)
	} else {
		records, err = s.source.GetRecords(ctx, timeRange)
	}

	s.metrics.ObserveSourceFetch(time.Since(startedAt), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceFailure, err)
	}

	return records, nil
}

// fetchRecordsWithStore lê os dias já persistidos e busca na fonte apenas os
// dias faltantes. Dias completos (anteriores a hoje) são persistidos.
func (s *Service) fetchRecordsWithStore(ctx context.Context, timeRange domain.TimeRange) ([]domain.AnalyticsRecord, error) {
	days := timeRange.Days()
	if len(days) == 0 {
		return []domain.AnalyticsRecord{}, nil
	}

	records := make([]domain.AnalyticsRecord, 0)
	existingDates := make(map[string]bool)

	stored, err := s.recordStore.GetByDateRange(ctx, days[0], days[len(days)-1])
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": days[0].Format(time.DateOnly),
			"end_date":   days[len(days)-1].Format(time.DateOnly),
		}).Warn("analytics: erro ao buscar registros do banco, usando apenas a fonte")
	}
	for _, record := range stored {
		records = append(records, *record)
		existingDates[record.Dimensions.Date] = true
	}

	var missingDays []time.Time
	for _, day := range days {
		if !existingDates[day.Format(time.DateOnly)] {
			missingDays = append(missingDays, day)
		}
	}

	if len(missingDays) == 0 {
		return records, nil
	}

	logrus.WithFields(logrus.Fields{
		"missing_dates": len(missingDays),
		"total_dates":   len(days),
		"first_missing": missingDays[0].Format(time.DateOnly),
		"last_missing":  missingDays[len(missingDays)-1].Format(time.DateOnly),
	}).Info("analytics: buscando registros da fonte para datas faltantes")

	today := s.now().Format(time.DateOnly)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, day := range missingDays {
		g.Go(func() error {
			dayRange := domain.TimeRange{
				Start:       day,
				End:         day.Add(24*time.Hour - time.Nanosecond),
				Granularity: domain.GranularityDay,
			}

			fetched, err := s.source.GetRecords(gctx, dayRange)
			if err != nil {
				return fmt.Errorf("erro ao buscar registros de %s: %w", day.Format(time.DateOnly), err)
			}

			if day.Format(time.DateOnly) != today {
				for i := range fetched {
					if err := s.recordStore.SaveOrUpdate(gctx, &fetched[i]); err != nil {
						logrus.WithError(err).WithField("date", day.Format(time.DateOnly)).
							Error("analytics: erro ao salvar registro no banco")
					}
				}
			}

			mu.Lock()
			records = append(records, fetched...)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// scopeFilters copia os filtros para que o escopo de entidade não vaze para o chamador
func scopeFilters(filters *domain.AnalyticsFilters) *domain.AnalyticsFilters {
	if filters == nil {
		return &domain.AnalyticsFilters{}
	}
	scoped := *filters
	return &scoped
}
