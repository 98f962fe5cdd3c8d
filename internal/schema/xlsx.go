package schema

import (
	"fmt"

	"github.com/tsawler/tabula/xlsx"
)

func loadXLSX(path string, opts Options) (*Schema, error) {
	r, err := xlsx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer r.Close()

	if r.SheetCount() == 0 {
		return nil, ErrEmpty
	}

	sheet, err := r.Sheet(0)
	if err != nil {
		return nil, fmt.Errorf("failed to read first worksheet: %w", err)
	}

	rows := make([][]string, len(sheet.Rows))
	for i, cells := range sheet.Rows {
		row := make([]string, len(cells))
		for j := range cells {
			row[j] = cells[j].Value
		}

		rows[i] = row
	}

	return FromRows(rows, opts.PreviewRows)
}
