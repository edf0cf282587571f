package exporting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/format"
)

type payloadKind string

const (
	kindRecords  payloadKind = "dashboard"
	kindCampaign payloadKind = "campaign"
	kindContent  payloadKind = "content"
	kindTeam     payloadKind = "team"
	kindGeneric  payloadKind = "data"
)

// field é uma linha rótulo/valor de uma entidade. Value é o valor bruto
// (CSV, planilha) e Display o valor formatado para leitura (HTML).
type field struct {
	Label   string
	Value   string
	Display string
	Number  *float64
}

// payload é a forma normalizada de qualquer dado exportável
type payload struct {
	kind    payloadKind
	title   string
	records []domain.AnalyticsRecord
	fields  []field
	data    any
	// rawData acrescenta identificadores e spend/revenue às linhas de registros
	rawData bool
}

func (p *payload) isTable() bool {
	return p.kind == kindRecords
}

// normalize reconhece os formatos aceitos. Mapas genéricos são convertidos
// na entidade correspondente pela chave de identificação presente.
func normalize(data any) (*payload, error) {
	switch v := data.(type) {
	case nil:
		return nil, ErrNoData
	case []domain.AnalyticsRecord:
		return &payload{kind: kindRecords, title: "Analytics Data", records: v, data: v}, nil
	case []*domain.AnalyticsRecord:
		records := make([]domain.AnalyticsRecord, 0, len(v))
		for _, r := range v {
			if r != nil {
				records = append(records, *r)
			}
		}
		return &payload{kind: kindRecords, title: "Analytics Data", records: records, data: v}, nil
	case *domain.CampaignAnalytics:
		if v == nil {
			return nil, ErrNoData
		}
		return campaignPayload(v, data), nil
	case domain.CampaignAnalytics:
		return campaignPayload(&v, data), nil
	case *domain.ContentAnalytics:
		if v == nil {
			return nil, ErrNoData
		}
		return contentPayload(v, data), nil
	case domain.ContentAnalytics:
		return contentPayload(&v, data), nil
	case *domain.TeamAnalytics:
		if v == nil {
			return nil, ErrNoData
		}
		return teamPayload(v, data), nil
	case domain.TeamAnalytics:
		return teamPayload(&v, data), nil
	case map[string]any:
		return mapPayload(v)
	default:
		return nil, fmt.Errorf("tipo de dado não suportado %T", data)
	}
}

func campaignPayload(c *domain.CampaignAnalytics, raw any) *payload {
	platforms := make([]string, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		platforms = append(platforms, string(p))
	}

	fields := []field{
		textField("Campaign ID", c.CampaignID),
		textField("Name", c.Name),
		textField("Status", c.Status),
		textField("Platforms", strings.Join(platforms, ", ")),
		currencyField("Budget", c.Budget),
		currencyField("Spent", c.Spent),
	}
	fields = append(fields, timeRangeFields(c.TimeRange)...)
	fields = append(fields, metricFields(c.Metrics)...)

	return &payload{kind: kindCampaign, title: "Campaign: " + c.Name, fields: fields, data: raw}
}

func contentPayload(c *domain.ContentAnalytics, raw any) *payload {
	published := ""
	if c.PublishedAt != nil {
		published = c.PublishedAt.Format(time.DateOnly)
	}

	fields := []field{
		textField("Content ID", c.ContentID),
		textField("Title", c.Title),
		textField("Platform", string(c.Platform)),
		textField("Published At", published),
	}
	fields = append(fields, timeRangeFields(c.TimeRange)...)
	fields = append(fields, metricFields(c.Metrics)...)

	return &payload{kind: kindContent, title: "Content: " + c.Title, fields: fields, data: raw}
}

func teamPayload(t *domain.TeamAnalytics, raw any) *payload {
	fields := []field{
		textField("Team ID", t.TeamID),
		textField("Name", t.Name),
		numberField("Members", float64(t.Members), format.Number(float64(t.Members))),
		numberField("Content Published", float64(t.ContentPublished), format.Number(float64(t.ContentPublished))),
		numberField("Approval Rate", t.ApprovalRate, format.Percentage(t.ApprovalRate, 1)),
		numberField("Avg Approval Hours", t.AvgApprovalHours, strconv.FormatFloat(t.AvgApprovalHours, 'f', 1, 64)+"h"),
	}
	fields = append(fields, metricFields(t.Metrics)...)

	return &payload{kind: kindTeam, title: "Team: " + t.Name, fields: fields, data: raw}
}

func mapPayload(m map[string]any) (*payload, error) {
	switch {
	case m["campaignId"] != nil:
		var c domain.CampaignAnalytics
		if err := decodeEntity(m, &c); err != nil {
			return nil, err
		}
		return campaignPayload(&c, m), nil
	case m["contentId"] != nil:
		var c domain.ContentAnalytics
		if err := decodeEntity(m, &c); err != nil {
			return nil, err
		}
		return contentPayload(&c, m), nil
	case m["teamId"] != nil:
		var t domain.TeamAnalytics
		if err := decodeEntity(m, &t); err != nil {
			return nil, err
		}
		return teamPayload(&t, m), nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]field, 0, len(keys))
	for _, k := range keys {
		if n, ok := toFloat(m[k]); ok {
			fields = append(fields, numberField(k, n, format.Number(n)))
			continue
		}
		fields = append(fields, textField(k, fmt.Sprint(m[k])))
	}

	return &payload{kind: kindGeneric, title: "Analytics Data", fields: fields, data: m}, nil
}

// decodeEntity converte o mapa na entidade usando as tags json dos campos
func decodeEntity(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("erro ao converter dados da entidade: %w", err)
	}
	return nil
}

func textField(label, value string) field {
	return field{Label: label, Value: value, Display: value}
}

func numberField(label string, value float64, display string) field {
	return field{Label: label, Value: formatFloat(value), Display: display, Number: &value}
}

func currencyField(label string, value float64) field {
	return numberField(label, value, format.Currency(value, "USD"))
}

func metricFields(metrics domain.MetricsBundle) []field {
	fields := make([]field, 0, len(metrics))
	for _, name := range metrics.Keys() {
		fields = append(fields, numberField(name, metrics[name], format.Metric(name, metrics[name])))
	}
	return fields
}

func timeRangeFields(tr *domain.TimeRange) []field {
	if tr == nil {
		return nil
	}
	return []field{
		textField("Start", tr.Start.Format(time.DateOnly)),
		textField("End", tr.End.Format(time.DateOnly)),
	}
}

// formatFloat escreve o número sem zeros à direita
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
