package schema

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"docfield-mapper/internal/match"
)

// DefaultPreviewRows is the number of data rows kept in Schema.Preview.
const DefaultPreviewRows = 10

// ErrEmpty is returned when a source has no header row.
var ErrEmpty = errors.New("schema is empty")

// Schema is the set of expected fields and a preview of the data below them.
type Schema struct {
	Source string `yaml:"source" json:"source"`
	// Columns are the expected field names in source order.
	Columns []string `yaml:"columns" json:"columns"`
	// Preview holds up to Options.PreviewRows data rows.
	Preview [][]string `yaml:"preview,omitempty" json:"preview,omitempty"`
	// MoreRows counts the data rows left out of Preview.
	MoreRows int `yaml:"more_rows,omitempty" json:"more_rows,omitempty"`
}

// Options controls schema loading.
type Options struct {
	// Table selects the SQLite table. Empty means the first user table.
	Table string
	// PreviewRows overrides DefaultPreviewRows when positive.
	PreviewRows int
}

// Load reads the schema at path, picking a reader by file extension.
func Load(ctx context.Context, path string, opts Options) (*Schema, error) {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}

	var (
		s   *Schema
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		s, err = loadCSV(path, opts)
	case ".xlsx":
		s, err = loadXLSX(path, opts)
	case ".db", ".sqlite", ".sqlite3":
		s, err = loadSQLite(ctx, path, opts)
	default:
		return nil, fmt.Errorf("unsupported schema file type %q", ext)
	}

	if err != nil {
		return nil, err
	}

	s.Source = path

	return s, nil
}

// FromRows builds a Schema from rows whose first row is the header.
// Rows with only blank cells are skipped.
func FromRows(rows [][]string, previewRows int) (*Schema, error) {
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}

	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	s := &Schema{Columns: make([]string, len(rows[0]))}
	for i, h := range rows[0] {
		s.Columns[i] = match.TrimSpace(h)
	}

	data := rows[1:]
	if len(data) > previewRows {
		s.MoreRows = len(data) - previewRows
		data = data[:previewRows]
	}

	s.Preview = data

	return s, nil
}

func dropBlankRows(rows [][]string) [][]string {
	kept := make([][]string, 0, len(rows))

	for _, row := range rows {
		for _, c := range row {
			if match.TrimSpace(c) != "" {
				kept = append(kept, row)

				break
			}
		}
	}

	return kept
}
