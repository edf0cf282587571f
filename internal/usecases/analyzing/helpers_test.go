package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func newRecord(date string, platform domain.Platform, metrics domain.MetricsBundle) domain.AnalyticsRecord {
	return domain.AnalyticsRecord{
		ID:         fmt.Sprintf("%s-%s", platform, date),
		Metrics:    metrics,
		Dimensions: domain.DimensionTag{Platform: platform, Date: date},
	}
}

// dailySeries gera um registro por dia a partir de start com os valores informados
func dailySeries(start time.Time, metric string, values ...float64) []domain.AnalyticsRecord {
	records := make([]domain.AnalyticsRecord, 0, len(values))
	for i, v := range values {
		date := start.AddDate(0, 0, i).Format(time.DateOnly)
		records = append(records, newRecord(date, domain.PlatformFacebook, domain.MetricsBundle{metric: v}))
	}
	return records
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
