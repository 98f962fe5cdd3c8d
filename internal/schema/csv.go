package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

func loadCSV(path string, opts Options) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
	}

	return FromRows(rows, opts.PreviewRows)
}

// ReadCSV reads every record from r. Records may have differing field
// counts and stray quotes are tolerated.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return cr.ReadAll()
}
