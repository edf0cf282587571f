package domain

import (
	"sort"
	"strings"
)

// DateRange é o intervalo informado pelo cliente, em ISO (data ou RFC3339)
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AnalyticsFilters são os filtros aceitos pelas consultas de analytics.
// Quando DateRange não é informado, Period é usado para gerar o intervalo.
type AnalyticsFilters struct {
	Period      string      `json:"period,omitempty"`
	DateRange   *DateRange  `json:"dateRange,omitempty"`
	Granularity Granularity `json:"granularity,omitempty"`
	Platforms   []Platform  `json:"platforms,omitempty"`
	Metrics     []string    `json:"metrics"`
	CampaignIDs []string    `json:"campaignIds,omitempty"`
	ContentIDs  []string    `json:"contentIds,omitempty"`
}

// ValidationResult acumula todos os erros de validação encontrados
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Matches indica se o registro passa pelos filtros de dimensão
func (f *AnalyticsFilters) Matches(record AnalyticsRecord) bool {
	if f == nil {
		return true
	}

	if len(f.Platforms) > 0 && !containsPlatform(f.Platforms, record.Dimensions.Platform) {
		return false
	}

	if len(f.CampaignIDs) > 0 && !containsString(f.CampaignIDs, record.Dimensions.CampaignID) {
		return false
	}

	if len(f.ContentIDs) > 0 && !containsString(f.ContentIDs, record.Dimensions.ContentID) {
		return false
	}

	return true
}

// CacheKey gera uma chave estável para os filtros, independente da ordem das listas
func (f *AnalyticsFilters) CacheKey() string {
	if f == nil {
		return "default"
	}

	parts := []string{"p=" + f.Period, "g=" + string(f.Granularity)}
	if f.DateRange != nil {
		parts = append(parts, "s="+f.DateRange.Start, "e="+f.DateRange.End)
	}

	platforms := make([]string, 0, len(f.Platforms))
	for _, p := range f.Platforms {
		platforms = append(platforms, string(p))
	}

	parts = append(parts,
		"pl="+sortedJoin(platforms),
		"m="+sortedJoin(f.Metrics),
		"c="+sortedJoin(f.CampaignIDs),
		"ct="+sortedJoin(f.ContentIDs),
	)

	return strings.Join(parts, "|")
}

func sortedJoin(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func containsPlatform(list []Platform, p Platform) bool {
	for _, item := range list {
		if item == p {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
