package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// DimensionTag identifica a plataforma e a data de um registro, além de
// campanha e conteúdo quando existirem
type DimensionTag struct {
	Platform     Platform `json:"platform"`
	Date         string   `json:"date"`
	CampaignID   string   `json:"campaignId,omitempty"`
	CampaignName string   `json:"campaignName,omitempty"`
	ContentID    string   `json:"contentId,omitempty"`
	ContentTitle string   `json:"contentTitle,omitempty"`
}

// ParsedDate interpreta a data do registro como data simples ou RFC3339
func (d DimensionTag) ParsedDate() (time.Time, error) {
	t, err := utils.ParseDate(d.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", d.Date, err)
	}
	return t, nil
}

// DateIn interpreta a data no fuso loc. Datas sem horário são dias de
// calendário e viram meia-noite em loc; datas RFC3339 são convertidas.
func (d DimensionTag) DateIn(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if day, err := time.Parse(time.DateOnly, d.Date); err == nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc), nil
	}

	t, err := d.ParsedDate()
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// AnalyticsRecord é a unidade de dados vinda da fonte: métricas de uma
// plataforma em uma data
type AnalyticsRecord struct {
	ID             string            `json:"id"`
	Metrics        MetricsBundle     `json:"metrics"`
	Dimensions     DimensionTag      `json:"dimensions"`
	TimeRange      *TimeRange        `json:"timeRange,omitempty"`
	FiltersApplied *AnalyticsFilters `json:"filtersApplied,omitempty"`
	CreatedAt      time.Time         `json:"-"`
	UpdatedAt      time.Time         `json:"-"`
}

// ChartPoint é um ponto de uma série temporal pronta para o gráfico
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}
