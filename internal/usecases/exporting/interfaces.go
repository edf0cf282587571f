package exporting

import (
	"context"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Exporter gera o arquivo de exportação pronto para download
type Exporter interface {
	Export(ctx context.Context, data any, opts domain.ExportOptions) (*domain.ExportResult, error)
}
