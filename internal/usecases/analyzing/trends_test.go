package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func findTrend(t *testing.T, trends []domain.TrendResult, metric string) domain.TrendResult {
	t.Helper()
	for _, trend := range trends {
		if trend.Metric == metric {
			return trend
		}
	}
	t.Fatalf("tendência de %s não encontrada", metric)
	return domain.TrendResult{}
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		current  float64
		want     float64
	}{
		{name: "aumento", previous: 100, current: 150, want: 50},
		{name: "queda", previous: 200, current: 50, want: -75},
		{name: "sem variação", previous: 10, current: 10, want: 0},
		{name: "anterior zero e atual positivo", previous: 0, current: 42, want: 100},
		{name: "ambos zero", previous: 0, current: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentageChange(tt.previous, tt.current), 0.0001)
		})
	}
}

func TestCalculateTrends(t *testing.T) {
	start := day(2025, 1, 1)

	tests := []struct {
		name     string
		records  []domain.AnalyticsRecord
		validate func(t *testing.T, trends []domain.TrendResult)
	}{
		{
			name:    "segunda metade maior é aumento",
			records: dailySeries(start, domain.MetricClicks, 10, 10, 20, 20),
			validate: func(t *testing.T, trends []domain.TrendResult) {
				require.Len(t, trends, 1)
				assert.Equal(t, domain.MetricClicks, trends[0].Metric)
				assert.Equal(t, 20.0, trends[0].Value)
				assert.Equal(t, 100.0, trends[0].Change)
				assert.Equal(t, domain.ChangeIncrease, trends[0].ChangeType)
				assert.Equal(t, "2025-01-03/2025-01-04", trends[0].Period)
			},
		},
		{
			name:    "variação dentro da faixa é estável",
			records: dailySeries(start, domain.MetricClicks, 100, 100, 104, 104),
			validate: func(t *testing.T, trends []domain.TrendResult) {
				assert.Equal(t, domain.ChangeStable, findTrend(t, trends, domain.MetricClicks).ChangeType)
			},
		},
		{
			name:    "quantidade ímpar deixa o registro extra na segunda metade",
			records: dailySeries(start, domain.MetricClicks, 10, 20, 40),
			validate: func(t *testing.T, trends []domain.TrendResult) {
				trend := findTrend(t, trends, domain.MetricClicks)
				assert.Equal(t, 30.0, trend.Value)
				assert.Equal(t, 200.0, trend.Change)
				assert.Equal(t, "2025-01-02/2025-01-03", trend.Period)
			},
		},
		{
			name: "registros fora de ordem são ordenados por data",
			records: []domain.AnalyticsRecord{
				newRecord("2025-01-04", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricLikes: 5}),
				newRecord("2025-01-01", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricLikes: 10}),
				newRecord("2025-01-03", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricLikes: 5}),
				newRecord("2025-01-02", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricLikes: 10}),
			},
			validate: func(t *testing.T, trends []domain.TrendResult) {
				trend := findTrend(t, trends, domain.MetricLikes)
				assert.Equal(t, -50.0, trend.Change)
				assert.Equal(t, domain.ChangeDecrease, trend.ChangeType)
			},
		},
		{
			name:    "primeira metade zerada",
			records: dailySeries(start, domain.MetricShares, 0, 0, 5, 5),
			validate: func(t *testing.T, trends []domain.TrendResult) {
				assert.Equal(t, 100.0, findTrend(t, trends, domain.MetricShares).Change)
			},
		},
		{
			name:    "um registro não gera tendência",
			records: dailySeries(start, domain.MetricClicks, 10),
			validate: func(t *testing.T, trends []domain.TrendResult) {
				assert.NotNil(t, trends)
				assert.Empty(t, trends)
			},
		},
		{
			name: "registros sem data válida são descartados",
			records: []domain.AnalyticsRecord{
				newRecord("2025-01-01", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricClicks: 1}),
				newRecord("", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricClicks: 1}),
			},
			validate: func(t *testing.T, trends []domain.TrendResult) {
				assert.Empty(t, trends)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CalculateTrends(tt.records))
		})
	}
}

func TestCalculateTrends_ReversedSeriesFlipsSign(t *testing.T) {
	values := []float64{12, 15, 9, 30, 41, 38}
	reversed := make([]float64, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}

	forward := findTrend(t, CalculateTrends(dailySeries(day(2025, 2, 1), domain.MetricClicks, values...)), domain.MetricClicks)
	backward := findTrend(t, CalculateTrends(dailySeries(day(2025, 2, 1), domain.MetricClicks, reversed...)), domain.MetricClicks)

	assert.Greater(t, forward.Change, 0.0)
	assert.Less(t, backward.Change, 0.0)
	assert.Equal(t, domain.ChangeIncrease, forward.ChangeType)
	assert.Equal(t, domain.ChangeDecrease, backward.ChangeType)
}

func TestComparePeriods(t *testing.T) {
	current := []domain.AnalyticsRecord{
		newRecord("2025-02-01", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricClicks: 150, domain.MetricLikes: 10, domain.MetricShares: 5, domain.MetricSaves: 1}),
	}
	previous := []domain.AnalyticsRecord{
		newRecord("2025-01-01", domain.PlatformFacebook, domain.MetricsBundle{domain.MetricClicks: 100, domain.MetricLikes: 10, domain.MetricShares: 10}),
	}

	results := ComparePeriods(current, previous)

	byMetric := make(map[string]domain.ComparisonResult, len(results))
	for _, r := range results {
		byMetric[r.Metric] = r
	}

	require.Len(t, results, 4)
	assert.Equal(t, domain.MetricClicks, results[0].Metric)

	assert.Equal(t, 150.0, byMetric[domain.MetricClicks].Current)
	assert.Equal(t, 100.0, byMetric[domain.MetricClicks].Previous)
	assert.Equal(t, 50.0, byMetric[domain.MetricClicks].Change)
	assert.Equal(t, domain.ChangeIncrease, byMetric[domain.MetricClicks].ChangeType)

	assert.Equal(t, domain.ChangeStable, byMetric[domain.MetricLikes].ChangeType)
	assert.Equal(t, domain.ChangeDecrease, byMetric[domain.MetricShares].ChangeType)

	// sem valor anterior conta como aumento de 100%
	assert.Equal(t, 100.0, byMetric[domain.MetricSaves].Change)
	assert.Equal(t, domain.ChangeIncrease, byMetric[domain.MetricSaves].ChangeType)
}

func TestComparePeriods_Empty(t *testing.T) {
	results := ComparePeriods(nil, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
