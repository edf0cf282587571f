package domain

// ExportFormat é o formato de saída de uma exportação
type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportCSV   ExportFormat = "csv"
	ExportExcel ExportFormat = "excel"
	ExportJSON  ExportFormat = "json"
	// ExportXLSX gera uma planilha real; ExportExcel mantém o conteúdo CSV
	ExportXLSX ExportFormat = "xlsx"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportPDF, ExportCSV, ExportExcel, ExportJSON, ExportXLSX:
		return true
	}
	return false
}

// ExportOptions controla a exportação e é ecoado nos metadados do JSON
type ExportOptions struct {
	Format         ExportFormat `json:"format"`
	EntityType     string       `json:"entityType,omitempty"`
	PrettyPrint    bool         `json:"prettyPrint,omitempty"`
	IncludeRawData bool         `json:"includeRawData,omitempty"`
	DateRange      *DateRange   `json:"dateRange,omitempty"`
}

// ExportResult é o arquivo pronto para download
type ExportResult struct {
	Filename    string   `json:"filename"`
	ContentType string   `json:"contentType"`
	Content     []byte   `json:"-"`
	Errors      []string `json:"errors,omitempty"`
}
