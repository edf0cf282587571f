package exporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/metrics"
)

var extensions = map[domain.ExportFormat]string{
	domain.ExportPDF:   "pdf",
	domain.ExportCSV:   "csv",
	domain.ExportExcel: "xlsx",
	domain.ExportXLSX:  "xlsx",
	domain.ExportJSON:  "json",
}

var contentTypes = map[domain.ExportFormat]string{
	domain.ExportPDF:   "text/html; charset=utf-8",
	domain.ExportCSV:   "text/csv; charset=utf-8",
	domain.ExportExcel: "application/vnd.ms-excel",
	domain.ExportXLSX:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	domain.ExportJSON:  "application/json",
}

type Service struct {
	now     func() time.Time
	metrics *metrics.Metrics
}

func NewService() *Service {
	return &Service{now: func() time.Time { return time.Now().UTC() }}
}

func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Export valida e serializa os dados. Problemas de forma e de serialização
// voltam na lista Errors do resultado; só formato desconhecido é erro.
func (s *Service) Export(ctx context.Context, data any, opts domain.ExportOptions) (*domain.ExportResult, error) {
	exportFormat := opts.Format
	if exportFormat == "" {
		exportFormat = domain.ExportCSV
		opts.Format = exportFormat
	}

	if !exportFormat.IsValid() {
		s.metrics.IncExport(string(exportFormat), ErrUnsupportedFormat)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, exportFormat)
	}

	now := s.now()
	entityType := opts.EntityType
	if entityType == "" {
		entityType = string(kindGeneric)
		if p, err := normalize(data); err == nil {
			entityType = string(p.kind)
		}
	}

	result := &domain.ExportResult{
		Filename:    Filename(entityType, exportFormat, now),
		ContentType: ContentType(exportFormat),
	}

	if errs := ValidateExportData(data, exportFormat); len(errs) > 0 {
		result.Errors = errs
		s.metrics.IncExport(string(exportFormat), errors.New("invalid data"))
		return result, nil
	}

	content, err := formatAt(data, opts, exportFormat, now)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"format":      exportFormat,
			"entity_type": entityType,
		}).Warn("analytics: erro ao exportar dados")

		result.Errors = []string{err.Error()}
		s.metrics.IncExport(string(exportFormat), err)
		return result, nil
	}

	result.Content = content
	s.metrics.IncExport(string(exportFormat), nil)

	logrus.WithFields(logrus.Fields{
		"format":   exportFormat,
		"filename": result.Filename,
		"bytes":    len(content),
	}).Info("analytics: exportação gerada")

	return result, nil
}

// Filename segue o padrão {entidade}-analytics-{AAAA-MM-DD}-{HH-MM-SS}.{ext}
func Filename(entityType string, exportFormat domain.ExportFormat, at time.Time) string {
	return fmt.Sprintf("%s-analytics-%s.%s", entityType, at.Format("2006-01-02-15-04-05"), extensions[exportFormat])
}

func ContentType(exportFormat domain.ExportFormat) string {
	if ct, ok := contentTypes[exportFormat]; ok {
		return ct
	}
	return "application/octet-stream"
}
