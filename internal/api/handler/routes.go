package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/billing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/exporting"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{Path: "/v1/analytics/validate", Method: http.MethodPost, Handler: ValidateFilters(service)},
		{Path: "/v1/analytics/time-range", Method: http.MethodGet, Handler: GetTimeRange(service)},
		{Path: "/v1/analytics/dashboard", Method: http.MethodGet, Handler: GetDashboard(service)},
		{Path: "/v1/analytics/realtime", Method: http.MethodGet, Handler: GetRealtime(service)},
		{Path: "/v1/analytics/timeseries", Method: http.MethodGet, Handler: GetTimeSeries(service)},
		{Path: "/v1/analytics/trends", Method: http.MethodGet, Handler: GetTrends(service)},
		{Path: "/v1/analytics/insights", Method: http.MethodGet, Handler: GetInsights(service)},
		{Path: "/v1/analytics/score", Method: http.MethodGet, Handler: GetScore(service)},
		{Path: "/v1/analytics/compare", Method: http.MethodPost, Handler: ComparePeriods(service)},
		{Path: "/v1/campaigns/:id/analytics", Method: http.MethodGet, Handler: GetCampaignAnalytics(service)},
		{Path: "/v1/contents/:id/analytics", Method: http.MethodGet, Handler: GetContentAnalytics(service)},
	}
}

func Exports(service analyzing.Analyzer, exporter exporting.Exporter, defaults config.Export) []router.Route {
	return []router.Route{
		{Path: "/v1/analytics/export", Method: http.MethodGet, Handler: ExportAnalytics(service, exporter, defaults)},
		{Path: "/v1/analytics/export", Method: http.MethodPost, Handler: ExportTeamAnalytics(exporter, defaults)},
		{Path: "/v1/campaigns/:id/analytics/export", Method: http.MethodGet, Handler: ExportCampaignAnalytics(service, exporter, defaults)},
		{Path: "/v1/contents/:id/analytics/export", Method: http.MethodGet, Handler: ExportContentAnalytics(service, exporter, defaults)},
	}
}

func Billing(processor billing.PaymentProcessor) []router.Route {
	return []router.Route{
		{Path: "/v1/billing/payments", Method: http.MethodPost, Handler: CreatePayment(processor)},
		{Path: "/v1/billing/payments", Method: http.MethodGet, Handler: ListPayments(processor)},
		{Path: "/v1/billing/payments/:id", Method: http.MethodGet, Handler: GetPayment(processor)},
		{Path: "/v1/billing/payments/:id/retry", Method: http.MethodPost, Handler: RetryPayment(processor)},
		{Path: "/v1/billing/notifications", Method: http.MethodGet, Handler: ListNotifications(processor)},
		{Path: "/v1/billing/notifications/:id/read", Method: http.MethodPost, Handler: MarkNotificationRead(processor)},
		{Path: "/v1/billing/queue", Method: http.MethodGet, Handler: GetQueueStatus(processor)},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
