package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"docfield-mapper/internal/schema"
	"docfield-mapper/internal/source"
)

// fieldFlags are the flags that name the expected fields.
type fieldFlags struct {
	schema string
	table  string
	fields []string
}

var errNoFields = errors.New("no expected fields: pass --schema or --field")

// load returns the expected fields. Explicit --field values replace the
// schema columns. The schema is returned when one was read.
func (f *fieldFlags) load(ctx context.Context) ([]string, *schema.Schema, error) {
	if len(f.fields) > 0 {
		return f.fields, nil, nil
	}

	if f.schema == "" {
		return nil, nil, errNoFields
	}

	s, err := schema.Load(ctx, f.schema, schema.Options{Table: f.table})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load schema: %w", err)
	}

	slog.Info("loaded schema", "path", f.schema, "columns", len(s.Columns), "more_rows", s.MoreRows)

	return s.Columns, s, nil
}

func loadDocument(ctx context.Context, path string, opts source.Options) (*source.Document, error) {
	doc, err := source.Load(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	slog.Info("loaded document", "path", path, "format", doc.Format, "pages", len(doc.Pages), "lines", len(doc.Lines))

	for _, w := range doc.Diagnostics.Warnings {
		slog.Warn("document warning", "path", path, "code", w.Code, "message", w.Message)
	}

	return doc, nil
}
