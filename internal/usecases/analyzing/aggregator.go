package analyzing

import (
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// AverageMetrics calcula a média aritmética de cada métrica presente nos
// registros. O divisor é sempre o total de registros, então uma métrica que
// falta em alguns deles puxa a média para baixo. Sem registros, retorna um
// bundle vazio.
func AverageMetrics(records []domain.AnalyticsRecord) domain.MetricsBundle {
	if len(records) == 0 {
		return domain.MetricsBundle{}
	}

	averages := SumMetrics(records)
	n := float64(len(records))
	for k, v := range averages {
		averages[k] = v / n
	}

	return averages
}

// SumMetrics soma cada métrica presente nos registros
func SumMetrics(records []domain.AnalyticsRecord) domain.MetricsBundle {
	totals := domain.MetricsBundle{}
	for _, record := range records {
		for k, v := range record.Metrics {
			totals[k] += v
		}
	}
	return totals
}
