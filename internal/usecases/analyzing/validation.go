package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// MaxRangeDays é a maior janela aceita em uma consulta
const MaxRangeDays = 365

// Mensagens de validação expostas ao cliente
const (
	ErrMsgInvalidStartDate = "Invalid start date"
	ErrMsgInvalidEndDate   = "Invalid end date"
	ErrMsgStartAfterEnd    = "Start date must be before end date"
	ErrMsgRangeTooLong     = "Date range cannot exceed 365 days"
	ErrMsgNoMetrics        = "At least one metric must be selected"
)

// ValidateFilters acumula todos os problemas encontrados nos filtros em vez
// de parar no primeiro. Uma lista de métricas vazia (mas informada) é erro;
// ausente significa todas as métricas.
func ValidateFilters(filters *domain.AnalyticsFilters) domain.ValidationResult {
	errs := make([]string, 0)
	if filters == nil {
		return domain.ValidationResult{IsValid: true, Errors: errs}
	}

	if filters.DateRange != nil {
		start, startErr := ParseFilterDate(filters.DateRange.Start)
		if startErr != nil {
			errs = append(errs, ErrMsgInvalidStartDate)
		}

		end, endErr := ParseFilterDate(filters.DateRange.End)
		if endErr != nil {
			errs = append(errs, ErrMsgInvalidEndDate)
		}

		if startErr == nil && endErr == nil {
			if !start.Before(end) {
				errs = append(errs, ErrMsgStartAfterEnd)
			} else if end.Sub(start) > MaxRangeDays*24*time.Hour {
				errs = append(errs, ErrMsgRangeTooLong)
			}
		}
	}

	if filters.Metrics != nil && len(filters.Metrics) == 0 {
		errs = append(errs, ErrMsgNoMetrics)
	}

	for _, metric := range filters.Metrics {
		if !domain.IsKnownMetric(metric) {
			errs = append(errs, fmt.Sprintf("Invalid metric: %s", metric))
		}
	}

	for _, platform := range filters.Platforms {
		if !platform.IsValid() {
			errs = append(errs, fmt.Sprintf("Invalid platform: %s", platform))
		}
	}

	if filters.Granularity != "" && !filters.Granularity.IsValid() {
		errs = append(errs, fmt.Sprintf("Invalid granularity: %s", filters.Granularity))
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ParseFilterDate aceita data simples (2006-01-02) ou RFC3339
func ParseFilterDate(value string) (time.Time, error) {
	return utils.ParseDate(value)
}
