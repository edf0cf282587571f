package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name       string
		filters    *domain.AnalyticsFilters
		wantValid  bool
		wantErrors []string
	}{
		{
			name:       "filtros nulos são válidos",
			filters:    nil,
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name: "filtros completos válidos",
			filters: &domain.AnalyticsFilters{
				DateRange:   &domain.DateRange{Start: "2025-01-01", End: "2025-01-31T23:59:59Z"},
				Granularity: domain.GranularityWeek,
				Platforms:   []domain.Platform{domain.PlatformFacebook, domain.PlatformLinkedIn},
				Metrics:     []string{domain.MetricClicks, domain.MetricROI},
			},
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name:       "métricas ausentes significam todas",
			filters:    &domain.AnalyticsFilters{Period: "7d"},
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name:       "lista de métricas vazia",
			filters:    &domain.AnalyticsFilters{Metrics: []string{}},
			wantValid:  false,
			wantErrors: []string{ErrMsgNoMetrics},
		},
		{
			name:       "datas inválidas",
			filters:    &domain.AnalyticsFilters{DateRange: &domain.DateRange{Start: "ontem", End: "2025-13-40"}},
			wantValid:  false,
			wantErrors: []string{ErrMsgInvalidStartDate, ErrMsgInvalidEndDate},
		},
		{
			name:       "início depois do fim",
			filters:    &domain.AnalyticsFilters{DateRange: &domain.DateRange{Start: "2025-02-01", End: "2025-01-01"}},
			wantValid:  false,
			wantErrors: []string{ErrMsgStartAfterEnd},
		},
		{
			name:       "início igual ao fim",
			filters:    &domain.AnalyticsFilters{DateRange: &domain.DateRange{Start: "2025-02-01", End: "2025-02-01"}},
			wantValid:  false,
			wantErrors: []string{ErrMsgStartAfterEnd},
		},
		{
			name:       "intervalo acima de 365 dias",
			filters:    &domain.AnalyticsFilters{DateRange: &domain.DateRange{Start: "2024-01-01", End: "2025-01-02"}},
			wantValid:  false,
			wantErrors: []string{ErrMsgRangeTooLong},
		},
		{
			name:       "exatamente 365 dias",
			filters:    &domain.AnalyticsFilters{DateRange: &domain.DateRange{Start: "2025-01-01", End: "2026-01-01"}},
			wantValid:  true,
			wantErrors: []string{},
		},
		{
			name: "acumula todos os erros na ordem",
			filters: &domain.AnalyticsFilters{
				DateRange:   &domain.DateRange{Start: "2025-03-01", End: "2025-01-01"},
				Granularity: "fortnight",
				Platforms:   []domain.Platform{"myspace"},
				Metrics:     []string{domain.MetricClicks, "bounce_rate"},
			},
			wantValid: false,
			wantErrors: []string{
				ErrMsgStartAfterEnd,
				"Invalid metric: bounce_rate",
				"Invalid platform: myspace",
				"Invalid granularity: fortnight",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateFilters(tt.filters)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantErrors, result.Errors)
		})
	}
}

func TestParseFilterDate(t *testing.T) {
	d, err := ParseFilterDate("2025-05-04")
	assert.NoError(t, err)
	assert.Equal(t, day(2025, 5, 4), d)

	_, err = ParseFilterDate("04/05/2025")
	assert.Error(t, err)
}
