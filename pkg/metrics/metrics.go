// Package metrics expõe os coletores Prometheus da API. Todos os métodos
// aceitam receptor nil para que os serviços funcionem sem instrumentação.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DashboardCacheTotal *prometheus.CounterVec
	SourceFetchDuration *prometheus.HistogramVec
	InsightsGenerated   *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
	RecordSyncRuns      *prometheus.CounterVec
	RecordsSynced       prometheus.Counter
	PaymentsProcessed   *prometheus.CounterVec
}

// NewMetrics cria e registra os coletores no registry informado
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DashboardCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_dashboard_cache_total",
				Help: "Dashboard cache lookups by result",
			},
			[]string{"result"},
		),
		SourceFetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_source_fetch_duration_seconds",
				Help:    "Time spent fetching records from the upstream source",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		InsightsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_insights_generated_total",
				Help: "Insights generated by type",
			},
			[]string{"type"},
		),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_exports_total",
				Help: "Exports by format and status",
			},
			[]string{"format", "status"},
		),
		RecordSyncRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_record_sync_runs_total",
				Help: "Record sync runs by status",
			},
			[]string{"status"},
		),
		RecordsSynced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_records_synced_total",
				Help: "Records persisted by the sync job",
			},
		),
		PaymentsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "billing_payments_processed_total",
				Help: "Payments processed by final status",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DashboardCacheTotal,
		m.SourceFetchDuration,
		m.InsightsGenerated,
		m.ExportsTotal,
		m.RecordSyncRuns,
		m.RecordsSynced,
		m.PaymentsProcessed,
	)

	return m
}

// Handler expõe o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.DashboardCacheTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSourceFetch(duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.SourceFetchDuration.WithLabelValues(statusLabel(err)).Observe(duration.Seconds())
}

func (m *Metrics) IncInsight(insightType string) {
	if m == nil {
		return
	}
	m.InsightsGenerated.WithLabelValues(insightType).Inc()
}

func (m *Metrics) IncExport(format string, err error) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, statusLabel(err)).Inc()
}

func (m *Metrics) IncRecordSync(err error, records int) {
	if m == nil {
		return
	}
	m.RecordSyncRuns.WithLabelValues(statusLabel(err)).Inc()
	m.RecordsSynced.Add(float64(records))
}

func (m *Metrics) IncPayment(status string) {
	if m == nil {
		return
	}
	m.PaymentsProcessed.WithLabelValues(status).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
