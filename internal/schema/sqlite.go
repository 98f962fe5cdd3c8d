package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

func loadSQLite(ctx context.Context, path string, opts Options) (*Schema, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	table := opts.Table
	if table == "" {
		table, err = firstTable(ctx, db)
		if err != nil {
			return nil, err
		}
	}

	columns, err := tableColumns(ctx, db, table)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q: %w", table, ErrEmpty)
	}

	s := &Schema{Columns: columns}

	var total int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count rows of %q: %w", table, err)
	}

	s.Preview, err = previewRows(ctx, db, table, opts.PreviewRows)
	if err != nil {
		return nil, err
	}

	s.MoreRows = max(total-len(s.Preview), 0)

	return s, nil
}

func firstTable(ctx context.Context, db *sql.DB) (string, error) {
	var name string

	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid LIMIT 1`,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrEmpty
	}

	if err != nil {
		return "", fmt.Errorf("failed to list tables: %w", err)
	}

	return name, nil
}

// tableColumns returns column names in declaration order.
func tableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(table)+")")
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %q: %w", table, err)
	}
	defer rows.Close()

	var columns []string

	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)

		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %q: %w", table, err)
		}

		columns = append(columns, name)
	}

	return columns, rows.Err()
}

func previewRows(ctx context.Context, db *sql.DB, table string, limit int) ([][]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", quoteIdent(table), limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var preview [][]string

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))

		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %q: %w", table, err)
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellString(v)
		}

		preview = append(preview, row)
	}

	return preview, rows.Err()
}

func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// quoteIdent quotes an SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
