package domain

import "time"

// Dashboard é a resposta completa de analytics para um conjunto de filtros
type Dashboard struct {
	TimeRange   TimeRange               `json:"timeRange"`
	Filters     *AnalyticsFilters       `json:"filters,omitempty"`
	Summary     MetricsBundle           `json:"summary"`
	Totals      MetricsBundle           `json:"totals"`
	Series      map[string][]ChartPoint `json:"series"`
	Trends      []TrendResult           `json:"trends"`
	Score       float64                 `json:"score"`
	Insights    []Insight               `json:"insights"`
	RecordCount int                     `json:"recordCount"`
	GeneratedAt time.Time               `json:"generatedAt"`
}
