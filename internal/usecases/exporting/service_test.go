package exporting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

func newTestService() *Service {
	svc := NewService()
	svc.now = func() time.Time { return generatedAt }
	return svc
}

func TestService_Export(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		opts     domain.ExportOptions
		validate func(t *testing.T, result *domain.ExportResult, err error)
	}{
		{
			name: "csv de registros",
			data: []domain.AnalyticsRecord{sampleRecord()},
			opts: domain.ExportOptions{Format: domain.ExportCSV},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Errors)
				assert.Equal(t, "dashboard-analytics-2025-01-15-10-30-45.csv", result.Filename)
				assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
				assert.True(t, strings.HasPrefix(string(result.Content), "date,platform,"))
			},
		},
		{
			name: "formato padrão é csv",
			data: sampleCampaign(),
			opts: domain.ExportOptions{},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "campaign-analytics-2025-01-15-10-30-45.csv", result.Filename)
			},
		},
		{
			name: "excel usa extensão xlsx com conteúdo csv",
			data: sampleCampaign(),
			opts: domain.ExportOptions{Format: domain.ExportExcel, EntityType: "report"},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "report-analytics-2025-01-15-10-30-45.xlsx", result.Filename)
				assert.Equal(t, "application/vnd.ms-excel", result.ContentType)
				assert.True(t, strings.HasPrefix(string(result.Content), "Field,Value"))
			},
		},
		{
			name: "pdf gera html",
			data: &domain.ContentAnalytics{ContentID: "p1", Title: "Launch post"},
			opts: domain.ExportOptions{Format: domain.ExportPDF},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "content-analytics-2025-01-15-10-30-45.pdf", result.Filename)
				assert.Contains(t, string(result.Content), "Content: Launch post")
			},
		},
		{
			name: "dados inválidos voltam na lista de erros",
			data: &domain.CampaignAnalytics{Name: "sem id"},
			opts: domain.ExportOptions{Format: domain.ExportJSON},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Campaign ID is required"}, result.Errors)
				assert.Nil(t, result.Content)
			},
		},
		{
			name: "falha de serialização vira erro na lista",
			data: map[string]any{"bad": make(chan int)},
			opts: domain.ExportOptions{Format: domain.ExportJSON},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], ErrSerialization.Error())
				assert.Equal(t, "data-analytics-2025-01-15-10-30-45.json", result.Filename)
			},
		},
		{
			name: "formato desconhecido",
			data: sampleCampaign(),
			opts: domain.ExportOptions{Format: "docx"},
			validate: func(t *testing.T, result *domain.ExportResult, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestService().Export(context.Background(), tt.data, tt.opts)
			tt.validate(t, result, err)
		})
	}
}

func TestValidateExportData(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		format domain.ExportFormat
		want   []string
	}{
		{
			name:   "registros válidos",
			data:   []domain.AnalyticsRecord{sampleRecord()},
			format: domain.ExportCSV,
			want:   []string{},
		},
		{
			name:   "registro sem data e plataforma",
			data:   []domain.AnalyticsRecord{{ID: "x", Dimensions: domain.DimensionTag{Date: "amanhã"}}},
			format: domain.ExportCSV,
			want:   []string{`Record 0: invalid date "amanhã"`, "Record 0: missing platform"},
		},
		{
			name:   "sem dados",
			data:   nil,
			format: domain.ExportPDF,
			want:   []string{"No data to export"},
		},
		{
			name:   "tipo não suportado e formato inválido",
			data:   "texto",
			format: "docx",
			want:   []string{"Unsupported format: docx", "Unsupported data type: string"},
		},
		{
			name:   "equipe sem nome",
			data:   &domain.TeamAnalytics{TeamID: "t1"},
			format: domain.ExportJSON,
			want:   []string{"Name is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateExportData(tt.data, tt.format))
		})
	}
}
