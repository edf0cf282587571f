package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithField("error", err.Error()).Error("handler: failed to encode response")
	}
}

// parseFilters monta os filtros a partir da query string. Um parâmetro de
// lista presente mas vazio vira lista vazia, para que a validação o rejeite.
func parseFilters(r *http.Request) *domain.AnalyticsFilters {
	query := r.URL.Query()

	filters := &domain.AnalyticsFilters{
		Period:      query.Get("period"),
		Granularity: domain.Granularity(query.Get("granularity")),
		CampaignIDs: splitCSV(query.Get("campaign_ids")),
		ContentIDs:  splitCSV(query.Get("content_ids")),
	}

	if start, end := query.Get("start_date"), query.Get("end_date"); start != "" || end != "" {
		filters.DateRange = &domain.DateRange{Start: start, End: end}
	}

	if query.Has("metrics") {
		filters.Metrics = splitCSV(query.Get("metrics"))
		if filters.Metrics == nil {
			filters.Metrics = []string{}
		}
	}

	for _, p := range splitCSV(query.Get("platforms")) {
		filters.Platforms = append(filters.Platforms, domain.Platform(p))
	}

	return filters
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// writeAnalyticsError traduz os erros do serviço de analytics para a tabela de códigos
func writeAnalyticsError(w http.ResponseWriter, logger log.Logger, err error) {
	var validationErr *analyzing.ValidationError

	switch {
	case errors.As(err, &validationErr):
		logger.WithField("error", err.Error()).Warn("analytics: invalid filters")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFilters, "Filtros inválidos", validationErr.Result)
	case errors.Is(err, analyzing.ErrCampaignNotFound), errors.Is(err, analyzing.ErrContentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, analyzing.ErrSourceFailure):
		logger.WithField("error", err.Error()).Error("analytics: source failure")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao buscar dados na fonte", nil)
	default:
		logger.WithField("error", err.Error()).Error("analytics: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
