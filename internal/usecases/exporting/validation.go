package exporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// ValidateExportData acumula os problemas de forma dos dados para o formato
// pedido. Uma lista vazia significa que os dados podem ser exportados.
func ValidateExportData(data any, exportFormat domain.ExportFormat) []string {
	errs := make([]string, 0)

	if !exportFormat.IsValid() {
		errs = append(errs, fmt.Sprintf("Unsupported format: %s", exportFormat))
	}

	p, err := normalize(data)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return append(errs, "No data to export")
		}
		return append(errs, fmt.Sprintf("Unsupported data type: %T", data))
	}

	switch p.kind {
	case kindRecords:
		for i, record := range p.records {
			if _, err := record.Dimensions.ParsedDate(); err != nil {
				errs = append(errs, fmt.Sprintf("Record %d: invalid date %q", i, record.Dimensions.Date))
			}
			if record.Dimensions.Platform == "" {
				errs = append(errs, fmt.Sprintf("Record %d: missing platform", i))
			}
		}
	case kindCampaign, kindContent, kindTeam:
		errs = append(errs, requiredFields(p)...)
	}

	return errs
}

// requiredFields confere o identificador e o nome de cada entidade
func requiredFields(p *payload) []string {
	required := map[payloadKind][]string{
		kindCampaign: {"Campaign ID", "Name"},
		kindContent:  {"Content ID", "Title"},
		kindTeam:     {"Team ID", "Name"},
	}

	values := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		values[f.Label] = f.Value
	}

	errs := make([]string, 0)
	for _, label := range required[p.kind] {
		if values[label] == "" {
			errs = append(errs, fmt.Sprintf("%s is required", label))
		}
	}
	return errs
}
