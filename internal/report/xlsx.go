package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"docfield-mapper/internal/resolve"
)

// MappedDataSheet is the sheet WriteXLSX writes the assignments to.
const MappedDataSheet = "Mapped Data"

// WriteXLSX writes a workbook with a single MappedDataSheet holding a
// header row of field names and one row of resolved values, in field order.
func WriteXLSX(w io.Writer, assignments []resolve.Assignment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), MappedDataSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(assignments))
	values := make([]interface{}, len(assignments))

	for i, a := range assignments {
		header[i] = a.Field
		values[i] = a.Value
	}

	if err := f.SetSheetRow(MappedDataSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	if err := f.SetSheetRow(MappedDataSheet, "A2", &values); err != nil {
		return fmt.Errorf("failed to write value row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}

	return nil
}
