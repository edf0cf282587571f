package analyzing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Bucketize agrupa os valores de metric em buckets contíguos da granularidade
// do intervalo. Todo bucket entre Start e End aparece, com zero quando não há
// registros. Registros fora do intervalo são ignorados.
func Bucketize(records []domain.AnalyticsRecord, metric string, timeRange domain.TimeRange) []domain.ChartPoint {
	if timeRange.End.Before(timeRange.Start) {
		return []domain.ChartPoint{}
	}

	granularity := timeRange.Granularity
	if !granularity.IsValid() {
		granularity = domain.GranularityDay
	}
	loc := timeRange.Start.Location()

	sums := make(map[string]float64)
	for _, record := range records {
		date, err := record.Dimensions.DateIn(loc)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"record_id": record.ID,
				"date":      record.Dimensions.Date,
			}).Warn("analytics: registro com data inválida ignorado")
			continue
		}

		if !timeRange.Contains(date) {
			continue
		}

		start := bucketStart(date, granularity)
		sums[bucketKey(start, granularity)] += record.Metrics.Get(metric)
	}

	points := make([]domain.ChartPoint, 0)
	for current := bucketStart(timeRange.Start, granularity); !current.After(timeRange.End); current = nextBucket(current, granularity) {
		key := bucketKey(current, granularity)
		points = append(points, domain.ChartPoint{
			Date:  key,
			Value: sums[key],
			Label: bucketLabel(current, granularity),
		})
	}

	return points
}

// BucketizeAll gera uma série por métrica
func BucketizeAll(records []domain.AnalyticsRecord, metrics []string, timeRange domain.TimeRange) map[string][]domain.ChartPoint {
	series := make(map[string][]domain.ChartPoint, len(metrics))
	for _, metric := range metrics {
		series[metric] = Bucketize(records, metric, timeRange)
	}
	return series
}

// bucketStart trunca t para o início do bucket que o contém. Semanas começam no domingo.
func bucketStart(t time.Time, g domain.Granularity) time.Time {
	loc := t.Location()
	switch g {
	case domain.GranularityHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case domain.GranularityWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case domain.GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case domain.GranularityQuarter:
		firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, loc)
	case domain.GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func nextBucket(t time.Time, g domain.Granularity) time.Time {
	switch g {
	case domain.GranularityHour:
		return t.Add(time.Hour)
	case domain.GranularityWeek:
		return t.AddDate(0, 0, 7)
	case domain.GranularityMonth:
		return t.AddDate(0, 1, 0)
	case domain.GranularityQuarter:
		return t.AddDate(0, 3, 0)
	case domain.GranularityYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func bucketKey(start time.Time, g domain.Granularity) string {
	switch g {
	case domain.GranularityHour:
		return start.Format("2006-01-02T15")
	case domain.GranularityMonth:
		return start.Format("2006-01")
	case domain.GranularityQuarter:
		return fmt.Sprintf("%d-Q%d", start.Year(), quarterOf(start))
	case domain.GranularityYear:
		return start.Format("2006")
	default:
		// dia e semana (domingo de início)
		return start.Format(time.DateOnly)
	}
}

func bucketLabel(start time.Time, g domain.Granularity) string {
	switch g {
	case domain.GranularityHour:
		return start.Format("Jan 2 15:04")
	case domain.GranularityWeek:
		return "Week of " + start.Format("Jan 2")
	case domain.GranularityMonth:
		return start.Format("Jan 2006")
	case domain.GranularityQuarter:
		return fmt.Sprintf("Q%d %d", quarterOf(start), start.Year())
	case domain.GranularityYear:
		return start.Format("2006")
	default:
		return start.Format("Jan 2")
	}
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
