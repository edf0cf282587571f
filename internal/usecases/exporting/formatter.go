package exporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Format serializa os dados no formato pedido. Aceita registros, entidades
// de campanha, conteúdo e equipe ou um mapa genérico com a chave de
// identificação da entidade.
func Format(data any, opts domain.ExportOptions, exportFormat domain.ExportFormat) ([]byte, error) {
	return formatAt(data, opts, exportFormat, time.Now().UTC())
}

func formatAt(data any, opts domain.ExportOptions, exportFormat domain.ExportFormat, generatedAt time.Time) ([]byte, error) {
	if !exportFormat.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, exportFormat)
	}

	p, err := normalize(data)
	if err != nil {
		return nil, err
	}
	p.rawData = opts.IncludeRawData

	switch exportFormat {
	case domain.ExportCSV, domain.ExportExcel:
		// excel mantém o conteúdo CSV, aberto diretamente pelas planilhas
		return toCSV(p)
	case domain.ExportJSON:
		return toJSON(p, opts, exportFormat, generatedAt)
	case domain.ExportPDF:
		return toHTML(p, generatedAt)
	case domain.ExportXLSX:
		return toXLSX(p)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, exportFormat)
}
