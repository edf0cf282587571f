package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// rawColumns entram no fim da linha quando includeRawData está ligado
var rawColumns = []string{"record_id", "campaign_id", "content_id", domain.MetricSpend, domain.MetricRevenue}

// recordHeader são as colunas da exportação de registros: data, plataforma
// e as métricas na ordem canônica
func recordHeader(raw bool) []string {
	header := append([]string{"date", "platform"}, domain.MetricNames...)
	if raw {
		header = append(header, rawColumns...)
	}
	return header
}

// recordValues devolve os valores da linha, métricas como float64
func recordValues(record domain.AnalyticsRecord, raw bool) []any {
	values := make([]any, 0, len(domain.MetricNames)+2+len(rawColumns))
	values = append(values, record.Dimensions.Date, string(record.Dimensions.Platform))
	for _, metric := range domain.MetricNames {
		values = append(values, record.Metrics.Get(metric))
	}
	if raw {
		values = append(values,
			record.ID,
			record.Dimensions.CampaignID,
			record.Dimensions.ContentID,
			record.Metrics.Get(domain.MetricSpend),
			record.Metrics.Get(domain.MetricRevenue),
		)
	}
	return values
}

func recordRow(record domain.AnalyticsRecord, raw bool) []string {
	values := recordValues(record, raw)
	row := make([]string, 0, len(values))
	for _, v := range values {
		if n, ok := v.(float64); ok {
			row = append(row, formatFloat(n))
			continue
		}
		row = append(row, fmt.Sprint(v))
	}
	return row
}

func toCSV(p *payload) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var rows [][]string
	if p.isTable() {
		rows = append(rows, recordHeader(p.rawData))
		for _, record := range p.records {
			rows = append(rows, recordRow(record, p.rawData))
		}
	} else {
		rows = append(rows, []string{"Field", "Value"})
		for _, f := range p.fields {
			rows = append(rows, []string{f.Label, f.Value})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("erro ao gerar csv: %w", err)
	}

	return buf.Bytes(), nil
}
