package analyzing

import (
	"errors"
	"strings"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrSourceFailure    = errors.New("error fetching records from source")
)

// ValidationError carrega o resultado de validação dos filtros rejeitados
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return "invalid filters: " + strings.Join(e.Result.Errors, "; ")
}
