package analyzing

import (
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Thresholds são os limites de cada faixa de desempenho de uma métrica
type Thresholds struct {
	Excellent float64
	Good      float64
	Average   float64
	Poor      float64
}

// MetricThresholds define as faixas por métrica. ctr, engagement e roi em %.
var MetricThresholds = map[string]Thresholds{
	domain.MetricCTR:         {Excellent: 5.0, Good: 3.0, Average: 1.5, Poor: 0.5},
	domain.MetricEngagement:  {Excellent: 10.0, Good: 6.0, Average: 3.0, Poor: 1.0},
	domain.MetricROI:         {Excellent: 300, Good: 200, Average: 100, Poor: 50},
	domain.MetricReach:       {Excellent: 100_000, Good: 50_000, Average: 10_000, Poor: 1_000},
	domain.MetricConversions: {Excellent: 1_000, Good: 500, Average: 100, Poor: 10},
	domain.MetricClicks:      {Excellent: 10_000, Good: 5_000, Average: 1_000, Poor: 100},
}

// ScoreWeights são os pesos de cada métrica no score de desempenho
var ScoreWeights = []struct {
	Metric string
	Weight float64
}{
	{domain.MetricCTR, 0.25},
	{domain.MetricEngagement, 0.20},
	{domain.MetricROI, 0.20},
	{domain.MetricReach, 0.15},
	{domain.MetricConversions, 0.10},
	{domain.MetricClicks, 0.10},
}

// NormalizeMetric converte o valor em uma nota de 0 a 100 pelas faixas da métrica
func NormalizeMetric(metric string, value float64) float64 {
	t, ok := MetricThresholds[metric]
	if !ok {
		return 0
	}

	switch {
	case value >= t.Excellent:
		return 100
	case value >= t.Good:
		return 75
	case value >= t.Average:
		return 50
	case value >= t.Poor:
		return 25
	default:
		return 0
	}
}

// PerformanceScore é a média ponderada das notas das métricas presentes.
// Métricas ausentes saem do denominador; sem nenhuma métrica o score é 0.
func PerformanceScore(metrics domain.MetricsBundle) float64 {
	var weighted, totalWeight float64
	for _, w := range ScoreWeights {
		value, ok := metrics[w.Metric]
		if !ok {
			continue
		}
		weighted += NormalizeMetric(w.Metric, value) * w.Weight
		totalWeight += w.Weight
	}

	if totalWeight == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(weighted / totalWeight)
}
