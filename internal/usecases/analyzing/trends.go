package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Limiares de classificação. Cada um tem um papel diferente e não devem ser unificados.
const (
	// TrendStabilityBand é a faixa (em %) dentro da qual uma tendência é estável
	TrendStabilityBand = 5.0
	// ComparisonSignThreshold separa aumento de queda na comparação entre períodos
	ComparisonSignThreshold = 0.0
	// SignificantChangeThreshold é a variação (em %) que gera um insight de tendência
	SignificantChangeThreshold = 20.0
)

// PercentageChange calcula a variação percentual de previous para current.
// Com previous zero, retorna 100 se current for positivo e 0 caso contrário.
func PercentageChange(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

type datedRecord struct {
	record domain.AnalyticsRecord
	date   time.Time
}

// trend guarda a variação sem arredondamento ao lado do resultado publicado
type trend struct {
	domain.TrendResult
	rawChange float64
}

// CalculateTrends ordena os registros por data, divide em duas metades (a
// metade extra fica com a segunda) e compara a média de cada métrica entre elas.
// Com menos de dois registros datados não há tendência.
func CalculateTrends(records []domain.AnalyticsRecord) []domain.TrendResult {
	trends := calculateTrends(records)

	results := make([]domain.TrendResult, 0, len(trends))
	for _, t := range trends {
		results = append(results, t.TrendResult)
	}
	return results
}

func calculateTrends(records []domain.AnalyticsRecord) []trend {
	dated := sortByDate(records)
	if len(dated) < 2 {
		return []trend{}
	}

	mid := len(dated) / 2
	first := make([]domain.AnalyticsRecord, 0, mid)
	second := make([]domain.AnalyticsRecord, 0, len(dated)-mid)
	for i, d := range dated {
		if i < mid {
			first = append(first, d.record)
		} else {
			second = append(second, d.record)
		}
	}

	firstAvg := AverageMetrics(first)
	secondAvg := AverageMetrics(second)
	period := fmt.Sprintf("%s/%s",
		dated[mid].date.Format(time.DateOnly),
		dated[len(dated)-1].date.Format(time.DateOnly),
	)

	trends := make([]trend, 0)
	for _, metric := range domain.OrderedMetricKeys(firstAvg, secondAvg) {
		change := PercentageChange(firstAvg.Get(metric), secondAvg.Get(metric))
		trends = append(trends, trend{
			TrendResult: domain.TrendResult{
				Metric:     metric,
				Value:      utils.RoundWithTwoDecimalPlace(secondAvg.Get(metric)),
				Change:     utils.RoundWithTwoDecimalPlace(change),
				ChangeType: classifyTrend(change),
				Period:     period,
			},
			rawChange: change,
		})
	}

	return trends
}

// ComparePeriods compara a média de cada métrica do período atual com a do anterior
func ComparePeriods(current, previous []domain.AnalyticsRecord) []domain.ComparisonResult {
	currentAvg := AverageMetrics(current)
	previousAvg := AverageMetrics(previous)

	results := make([]domain.ComparisonResult, 0)
	for _, metric := range domain.OrderedMetricKeys(currentAvg, previousAvg) {
		change := PercentageChange(previousAvg.Get(metric), currentAvg.Get(metric))
		results = append(results, domain.ComparisonResult{
			Metric:     metric,
			Current:    utils.RoundWithTwoDecimalPlace(currentAvg.Get(metric)),
			Previous:   utils.RoundWithTwoDecimalPlace(previousAvg.Get(metric)),
			Change:     utils.RoundWithTwoDecimalPlace(change),
			ChangeType: classifyComparison(change),
		})
	}

	return results
}

func classifyTrend(change float64) domain.ChangeType {
	switch {
	case change > TrendStabilityBand:
		return domain.ChangeIncrease
	case change < -TrendStabilityBand:
		return domain.ChangeDecrease
	default:
		return domain.ChangeStable
	}
}

func classifyComparison(change float64) domain.ChangeType {
	switch {
	case change > ComparisonSignThreshold:
		return domain.ChangeIncrease
	case change < ComparisonSignThreshold:
		return domain.ChangeDecrease
	default:
		return domain.ChangeStable
	}
}

// sortByDate descarta registros sem data válida e ordena os demais de forma estável
func sortByDate(records []domain.AnalyticsRecord) []datedRecord {
	dated := make([]datedRecord, 0, len(records))
	for _, record := range records {
		date, err := record.Dimensions.ParsedDate()
		if err != nil {
			continue
		}
		dated = append(dated, datedRecord{record: record, date: date})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	return dated
}
