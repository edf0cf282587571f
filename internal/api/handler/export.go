package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

type teamExportRequest struct {
	Format  domain.ExportFormat   `json:"format"`
	Options domain.ExportOptions  `json:"options"`
	Team    *domain.TeamAnalytics `json:"team"`
}

// exportOptions lê format, pretty e raw da query, usando os padrões configurados
func exportOptions(r *http.Request, defaults config.Export, entityType string) domain.ExportOptions {
	query := r.URL.Query()

	opts := domain.ExportOptions{
		Format:      domain.ExportFormat(query.Get("format")),
		EntityType:  entityType,
		PrettyPrint: defaults.PrettyPrint,
	}
	if opts.Format == "" {
		opts.Format = domain.ExportFormat(defaults.DefaultFormat)
	}
	if pretty, err := strconv.ParseBool(query.Get("pretty")); err == nil {
		opts.PrettyPrint = pretty
	}
	if raw, err := strconv.ParseBool(query.Get("raw")); err == nil {
		opts.IncludeRawData = raw
	}
	if start, end := query.Get("start_date"), query.Get("end_date"); start != "" && end != "" {
		opts.DateRange = &domain.DateRange{Start: start, End: end}
	}

	return opts
}

// writeExport envia o arquivo como download ou a lista de problemas encontrados
func writeExport(ctx context.Context, w http.ResponseWriter, exporter exporting.Exporter, data any, opts domain.ExportOptions) {
	logger := log.ForContext(ctx)

	result, err := exporter.Export(ctx, data, opts)
	if err != nil {
		if errors.Is(err, exporting.ErrUnsupportedFormat) {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedExportFormat, err.Error(), nil)
			return
		}
		logger.WithField("error", err.Error()).Error("export: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	if len(result.Errors) > 0 {
		logger.WithField("error", fmt.Sprint(result.Errors)).Warn("export: export rejected")
		apiErrors.WriteError(w, apiErrors.ErrExportData, "Não foi possível exportar os dados", map[string]any{
			"errors": result.Errors,
		})
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		logger.WithField("error", err.Error()).Error("export: failed to write file")
	}
}

// ExportAnalytics exporta os registros filtrados do período
func ExportAnalytics(service analyzing.Analyzer, exporter exporting.Exporter, defaults config.Export) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		records, _, err := service.GetRecords(r.Context(), parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeExport(r.Context(), w, exporter, records, exportOptions(r, defaults, "analytics"))
	})
}

func ExportCampaignAnalytics(service analyzing.Analyzer, exporter exporting.Exporter, defaults config.Export) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analytics, err := service.GetCampaignAnalytics(r.Context(), id, parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeExport(r.Context(), w, exporter, analytics, exportOptions(r, defaults, "campaign"))
	})
}

func ExportContentAnalytics(service analyzing.Analyzer, exporter exporting.Exporter, defaults config.Export) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analytics, err := service.GetContentAnalytics(r.Context(), id, parseFilters(r))
		if err != nil {
			writeAnalyticsError(w, logger, err)
			return
		}

		writeExport(r.Context(), w, exporter, analytics, exportOptions(r, defaults, "content"))
	})
}

// ExportTeamAnalytics exporta dados de equipe enviados pelo cliente
func ExportTeamAnalytics(exporter exporting.Exporter, defaults config.Export) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req teamExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithField("error", err.Error()).Warn("export: invalid team export body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Team == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo team é obrigatório", nil)
			return
		}

		opts := req.Options
		if req.Format != "" {
			opts.Format = req.Format
		}
		if opts.Format == "" {
			opts.Format = domain.ExportFormat(defaults.DefaultFormat)
		}
		if opts.EntityType == "" {
			opts.EntityType = "team"
		}

		writeExport(r.Context(), w, exporter, req.Team, opts)
	})
}
