package exporting

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/format"
)

// htmlTemplate gera um documento autocontido, pronto para imprimir em PDF
var htmlTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 32px; color: #222; }
h1 { font-size: 22px; margin-bottom: 4px; }
.meta { color: #777; font-size: 12px; margin-bottom: 24px; }
table { border-collapse: collapse; width: 100%; font-size: 12px; }
th, td { border: 1px solid #ddd; padding: 6px 8px; text-align: right; }
th { background: #e0e0e0; }
td:first-child, td:nth-child(2), th:first-child, th:nth-child(2) { text-align: left; }
.summary { display: grid; grid-template-columns: 220px 1fr; gap: 6px 16px; font-size: 14px; }
.label { font-weight: bold; }
.empty { color: #777; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated at {{.GeneratedAt}}</p>
{{- if .Table}}
{{- if .Rows}}
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- else}}
<p class="empty">No data available for the selected period.</p>
{{- end}}
{{- else}}
<div class="summary">
{{- range .Fields}}
<span class="label">{{.Label}}</span><span class="value">{{.Display}}</span>
{{- end}}
</div>
{{- end}}
</body>
</html>
`))

type htmlView struct {
	Title       string
	GeneratedAt string
	Table       bool
	Headers     []string
	Rows        [][]string
	Fields      []field
}

func toHTML(p *payload, generatedAt time.Time) ([]byte, error) {
	view := htmlView{
		Title:       p.title,
		GeneratedAt: generatedAt.Format("Jan 2, 2006 15:04 MST"),
		Table:       p.isTable(),
		Fields:      p.fields,
	}

	if view.Table {
		view.Headers = append([]string{"Date", "Platform"}, domain.MetricNames...)
		if p.rawData {
			view.Headers = append(view.Headers, "Record ID", "Campaign ID", "Content ID", "Spend", "Revenue")
		}
		for _, record := range p.records {
			row := []string{record.Dimensions.Date, string(record.Dimensions.Platform)}
			for _, metric := range domain.MetricNames {
				row = append(row, format.Metric(metric, record.Metrics.Get(metric)))
			}
			if p.rawData {
				row = append(row,
					record.ID,
					record.Dimensions.CampaignID,
					record.Dimensions.ContentID,
					format.Currency(record.Metrics.Get(domain.MetricSpend), "USD"),
					format.Currency(record.Metrics.Get(domain.MetricRevenue), "USD"),
				)
			}
			view.Rows = append(view.Rows, row)
		}
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("erro ao gerar html: %w", err)
	}

	return buf.Bytes(), nil
}
