package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

type compareRequest struct {
	Current  *domain.AnalyticsFilters `json:"current"`
	Previous *domain.AnalyticsFilters `json:"previous"`
}

func ValidateFilters(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var filters domain.AnalyticsFilters
		if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
			logger.WithField("error", err.Error()).Warn("analytics: invalid filters body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, service.ValidateFilters(&filters))
	})
}

func GetTimeRange(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeRange, err := service.ResolveTimeRange(parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, timeRange)
	})
}

func GetDashboard(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filters := parseFilters(r)

		logger.WithField("filters", filters.CacheKey()).Info("analytics: building dashboard")

		dashboard, err := service.GetDashboard(r.Context(), filters)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

func GetRealtime(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboard, err := service.GetRealtime(r.Context(), parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

func GetTimeSeries(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro metric é obrigatório", nil)
			return
		}

		points, err := service.GetTimeSeries(r.Context(), parseFilters(r), metric)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"metric": metric,
			"points": points,
		})
	})
}

func GetTrends(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trends, err := service.GetTrends(r.Context(), parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, trends)
	})
}

func GetInsights(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insights, err := service.GetInsights(r.Context(), parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, insights)
	})
}

func GetScore(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		score, err := service.GetScore(r.Context(), parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]float64{"score": score})
	})
}

func ComparePeriods(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithField("error", err.Error()).Warn("analytics: invalid compare body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Current == nil || req.Previous == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os filtros current e previous são obrigatórios", nil)
			return
		}

		comparison, err := service.ComparePeriods(r.Context(), req.Current, req.Previous)
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, comparison)
	})
}

func GetCampaignAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analytics, err := service.GetCampaignAnalytics(r.Context(), id, parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, analytics)
	})
}

func GetContentAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analytics, err := service.GetContentAnalytics(r.Context(), id, parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, analytics)
	})
}
