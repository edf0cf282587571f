package domain

import (
	"sort"

	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Nomes canônicos das métricas
const (
	MetricImpressions = "impressions"
	MetricClicks      = "clicks"
	MetricConversions = "conversions"
	MetricCTR         = "ctr"
	MetricCPC         = "cpc"
	MetricCPM         = "cpm"
	MetricROI         = "roi"
	MetricEngagement  = "engagement"
	MetricReach       = "reach"
	MetricShares      = "shares"
	MetricComments    = "comments"
	MetricLikes       = "likes"
	MetricSaves       = "saves"

	// Valores brutos usados apenas para derivar cpc, cpm e roi
	MetricSpend   = "spend"
	MetricRevenue = "revenue"
)

// MetricNames define a ordem canônica das métricas (colunas de exportação, séries do dashboard)
var MetricNames = []string{
	MetricImpressions,
	MetricClicks,
	MetricConversions,
	MetricCTR,
	MetricCPC,
	MetricCPM,
	MetricROI,
	MetricEngagement,
	MetricReach,
	MetricShares,
	MetricComments,
	MetricLikes,
	MetricSaves,
}

var knownMetrics = func() map[string]bool {
	known := make(map[string]bool, len(MetricNames)+2)
	for _, name := range MetricNames {
		known[name] = true
	}
	known[MetricSpend] = true
	known[MetricRevenue] = true
	return known
}()

// IsKnownMetric indica se o nome pertence ao conjunto de métricas suportadas
func IsKnownMetric(name string) bool {
	return knownMetrics[name]
}

// MetricsBundle é um mapa esparso de métrica para valor. Uma chave ausente
// significa "não medido", que é diferente de zero.
type MetricsBundle map[string]float64

// Has indica se a métrica foi medida
func (m MetricsBundle) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Get retorna o valor da métrica ou zero quando ausente
func (m MetricsBundle) Get(name string) float64 {
	return m[name]
}

// Clone retorna uma cópia independente do bundle
func (m MetricsBundle) Clone() MetricsBundle {
	out := make(MetricsBundle, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys retorna as chaves presentes: primeiro na ordem canônica, depois as
// demais em ordem alfabética
func (m MetricsBundle) Keys() []string {
	return OrderedMetricKeys(m)
}

// OrderedMetricKeys retorna a união das chaves dos bundles em ordem estável
func OrderedMetricKeys(bundles ...MetricsBundle) []string {
	seen := make(map[string]bool)
	for _, b := range bundles {
		for k := range b {
			seen[k] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for _, name := range MetricNames {
		if seen[name] {
			keys = append(keys, name)
			delete(seen, name)
		}
	}

	extra := make([]string, 0, len(seen))
	for k := range seen {
		extra = append(extra, k)
	}
	sort.Strings(extra)

	return append(keys, extra...)
}

// DeriveRatios calcula ctr, cpc, cpm e roi a partir dos valores brutos,
// sem sobrescrever razões já informadas pela fonte
func DeriveRatios(m MetricsBundle) MetricsBundle {
	impressions := m.Get(MetricImpressions)
	clicks := m.Get(MetricClicks)
	spend := m.Get(MetricSpend)

	if !m.Has(MetricCTR) && m.Has(MetricImpressions) && m.Has(MetricClicks) && impressions > 0 {
		m[MetricCTR] = utils.RoundWithTwoDecimalPlace(clicks / impressions * 100)
	}

	if !m.Has(MetricCPC) && m.Has(MetricSpend) && clicks > 0 {
		m[MetricCPC] = utils.RoundWithTwoDecimalPlace(spend / clicks)
	}

	if !m.Has(MetricCPM) && m.Has(MetricSpend) && impressions > 0 {
		m[MetricCPM] = utils.RoundWithTwoDecimalPlace(spend / impressions * 1000)
	}

	// ROI em porcentagem: (receita - investimento) / investimento
	if !m.Has(MetricROI) && m.Has(MetricRevenue) && spend > 0 {
		m[MetricROI] = utils.RoundWithTwoDecimalPlace((m.Get(MetricRevenue) - spend) / spend * 100)
	}

	return m
}
