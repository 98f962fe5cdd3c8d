package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"docfield-mapper/internal/resolve"
)

// WriteCSV writes a header row of field names followed by one row of
// resolved values, in field order.
func WriteCSV(w io.Writer, assignments []resolve.Assignment) error {
	header := make([]string, len(assignments))
	values := make([]string, len(assignments))

	for i, a := range assignments {
		header[i] = a.Field
		values[i] = a.Value
	}

	cw := csv.NewWriter(w)

	if err := cw.WriteAll([][]string{header, values}); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}
