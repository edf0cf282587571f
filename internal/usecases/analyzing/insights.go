package analyzing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Confiança atribuída a cada regra
const (
	performanceConfidence  = 90
	optimizationConfidence = 85
	trendConfidence        = 80
)

// InsightGenerator aplica as regras de insight sobre um conjunto de registros
type InsightGenerator struct {
	newID func() string
	now   func() time.Time
}

func NewInsightGenerator() *InsightGenerator {
	return &InsightGenerator{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Generate avalia todas as regras de forma independente; mais de uma pode disparar
func (g *InsightGenerator) Generate(records []domain.AnalyticsRecord) []domain.Insight {
	insights := make([]domain.Insight, 0)
	if len(records) == 0 {
		return insights
	}

	averages := AverageMetrics(records)
	generatedAt := g.now()

	if ctr, ok := averages[domain.MetricCTR]; ok && ctr > MetricThresholds[domain.MetricCTR].Good {
		insights = append(insights, domain.Insight{
			ID:          g.newID(),
			Type:        domain.InsightPerformance,
			Title:       "Strong click-through rate",
			Description: fmt.Sprintf("Average CTR of %.2f%% is above the %.1f%% benchmark.", ctr, MetricThresholds[domain.MetricCTR].Good),
			Impact:      domain.ImpactHigh,
			Confidence:  performanceConfidence,
			Actionable:  false,
			Metrics:     []string{domain.MetricCTR},
			GeneratedAt: generatedAt,
		})
	}

	if engagement, ok := averages[domain.MetricEngagement]; ok && engagement < MetricThresholds[domain.MetricEngagement].Average {
		insights = append(insights, domain.Insight{
			ID:          g.newID(),
			Type:        domain.InsightOptimization,
			Title:       "Low engagement rate",
			Description: fmt.Sprintf("Average engagement of %.2f%% is below %.1f%%. Consider testing new creatives or posting times.", engagement, MetricThresholds[domain.MetricEngagement].Average),
			Impact:      domain.ImpactMedium,
			Confidence:  optimizationConfidence,
			Actionable:  true,
			Metrics:     []string{domain.MetricEngagement},
			GeneratedAt: generatedAt,
		})
	}

	// o limiar usa a variação sem arredondamento
	for _, trend := range calculateTrends(records) {
		if math.Abs(trend.rawChange) <= SignificantChangeThreshold {
			continue
		}

		impact := domain.ImpactMedium
		direction := "decreased"
		if trend.rawChange > 0 {
			impact = domain.ImpactHigh
			direction = "increased"
		}

		insights = append(insights, domain.Insight{
			ID:          g.newID(),
			Type:        domain.InsightTrend,
			Title:       fmt.Sprintf("%s %s significantly", metricTitle(trend.Metric), direction),
			Description: fmt.Sprintf("%s %s by %.1f%% compared to the first half of the period.", metricTitle(trend.Metric), direction, math.Abs(trend.Change)),
			Impact:      impact,
			Confidence:  trendConfidence,
			Actionable:  trend.rawChange < 0,
			Metrics:     []string{trend.Metric},
			GeneratedAt: generatedAt,
		})
	}

	return insights
}

func metricTitle(metric string) string {
	switch metric {
	case domain.MetricCTR, domain.MetricCPC, domain.MetricCPM, domain.MetricROI:
		return strings.ToUpper(metric)
	case "":
		return ""
	default:
		return strings.ToUpper(metric[:1]) + metric[1:]
	}
}
