package domain

import "time"

// Granularity define o tamanho do bucket de agregação temporal
type Granularity string

const (
	GranularityHour    Granularity = "hour"
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

var granularities = map[Granularity]bool{
	GranularityHour:    true,
	GranularityDay:     true,
	GranularityWeek:    true,
	GranularityMonth:   true,
	GranularityQuarter: true,
	GranularityYear:    true,
}

func (g Granularity) IsValid() bool {
	return granularities[g]
}

// TimeRange é um intervalo fechado [Start, End] com a granularidade desejada
type TimeRange struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Granularity Granularity `json:"granularity"`
}

// Contains indica se t está dentro do intervalo, incluindo as bordas
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days retorna os dias de calendário cobertos pelo intervalo, em ordem crescente
func (r TimeRange) Days() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}

	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, r.Start.Location())

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
