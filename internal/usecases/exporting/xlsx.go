package exporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Analytics"

func toXLSX(p *payload) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// a planilha padrão do arquivo novo é renomeada
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	var columns []string
	var rows [][]any
	if p.isTable() {
		columns = recordHeader(p.rawData)
		for _, record := range p.records {
			rows = append(rows, recordValues(record, p.rawData))
		}
	} else {
		columns = []string{"Field", "Value"}
		for _, fl := range p.fields {
			var value any = fl.Value
			if fl.Number != nil {
				value = *fl.Number
			}
			rows = append(rows, []any{fl.Label, value})
		}
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha %d: %w", rowIdx+2, err)
		}
	}

	for i := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, 15); err != nil {
			return nil, err
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buffer.Bytes(), nil
}
