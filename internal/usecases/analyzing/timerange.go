package analyzing

import (
	"strings"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Períodos reconhecidos por GenerateTimeRange
const (
	Period7Days     = "7d"
	Period30Days    = "30d"
	Period90Days    = "90d"
	Period6Months   = "6m"
	Period1Year     = "1y"
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"

	DefaultPeriod = Period30Days
)

// Periods lista os tokens de período aceitos
var Periods = []string{Period7Days, Period30Days, Period90Days, Period6Months, Period1Year, PeriodThisMonth, PeriodLastMonth}

// GenerateTimeRange converte um token de período em um intervalo concreto
// relativo a now. Tokens desconhecidos caem no padrão de 30 dias.
func GenerateTimeRange(period string, now time.Time) domain.TimeRange {
	switch period {
	case Period7Days:
		return domain.TimeRange{Start: now.AddDate(0, 0, -7), End: now, Granularity: granularityFor(period)}
	case Period30Days:
		return domain.TimeRange{Start: now.AddDate(0, 0, -30), End: now, Granularity: granularityFor(period)}
	case Period90Days:
		return domain.TimeRange{Start: now.AddDate(0, 0, -90), End: now, Granularity: granularityFor(period)}
	case Period6Months:
		return domain.TimeRange{Start: now.AddDate(0, -6, 0), End: now, Granularity: granularityFor(period)}
	case Period1Year:
		return domain.TimeRange{Start: now.AddDate(-1, 0, 0), End: now, Granularity: granularityFor(period)}
	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.TimeRange{Start: start, End: now, Granularity: granularityFor(period)}
	case PeriodLastMonth:
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.TimeRange{
			Start:       firstOfThisMonth.AddDate(0, -1, 0),
			End:         firstOfThisMonth.AddDate(0, 0, -1),
			Granularity: domain.GranularityMonth,
		}
	default:
		return GenerateTimeRange(DefaultPeriod, now)
	}
}

// IsKnownPeriod indica se o token é um dos períodos suportados
func IsKnownPeriod(period string) bool {
	for _, p := range Periods {
		if p == period {
			return true
		}
	}
	return false
}

// granularityFor deriva a granularidade do sufixo do token: d para dia,
// m para mês, o resto para ano (this_month termina em h e cai em ano).
// last_month é o único fixado em mês, direto em GenerateTimeRange.
func granularityFor(period string) domain.Granularity {
	switch {
	case strings.HasSuffix(period, "d"):
		return domain.GranularityDay
	case strings.HasSuffix(period, "m"):
		return domain.GranularityMonth
	default:
		return domain.GranularityYear
	}
}
