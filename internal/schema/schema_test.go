package schema

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]string
		previewRows int
		wantColumns []string
		wantPreview [][]string
		wantMore    int
		wantErr     bool
	}{
		{
			name:    "no rows",
			rows:    nil,
			wantErr: true,
		},
		{
			name:    "only blank rows",
			rows:    [][]string{{"", " "}, {"\t"}},
			wantErr: true,
		},
		{
			name:        "header only",
			rows:        [][]string{{" Invoice Number ", "Total\u00a0"}},
			wantColumns: []string{"Invoice Number", "Total"},
		},
		{
			name:        "blank rows skipped before and between data",
			rows:        [][]string{{"", ""}, {"A", "B"}, {" ", ""}, {"1", "2"}},
			wantColumns: []string{"A", "B"},
			wantPreview: [][]string{{"1", "2"}},
		},
		{
			name:        "preview limit",
			rows:        [][]string{{"A"}, {"1"}, {"2"}, {"3"}, {"4"}},
			previewRows: 2,
			wantColumns: []string{"A"},
			wantPreview: [][]string{{"1"}, {"2"}},
			wantMore:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromRows(tt.rows, tt.previewRows)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmpty)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantColumns, s.Columns)
			assert.Equal(t, tt.wantMore, s.MoreRows)

			if tt.wantPreview == nil {
				assert.Empty(t, s.Preview)
			} else {
				assert.Equal(t, tt.wantPreview, s.Preview)
			}
		})
	}
}

func TestFromRows_DefaultPreview(t *testing.T) {
	rows := [][]string{{"A"}}
	for i := range 15 {
		rows = append(rows, []string{fmt.Sprint(i)})
	}

	s, err := FromRows(rows, 0)
	require.NoError(t, err)
	assert.Len(t, s.Preview, DefaultPreviewRows)
	assert.Equal(t, 5, s.MoreRows)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "fields.csv",
		"\n\ufeffInvoice Number, Total Amount ,\"Customer, Name\"\nINV-1,5.00,Acme\n\nINV-2,7\n")

	s, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, path, s.Source)
	assert.Equal(t, []string{"Invoice Number", "Total Amount", "Customer, Name"}, s.Columns)
	assert.Equal(t, [][]string{{"INV-1", "5.00", "Acme"}, {"INV-2", "7"}}, s.Preview)
	assert.Zero(t, s.MoreRows)
}

func TestLoad_EmptyCSV(t *testing.T) {
	path := writeFile(t, "empty.csv", "\n , \n")

	_, err := Load(context.Background(), path, Options{})
	require.ErrorIs(t, err, ErrEmpty)
	assert.EqualError(t, err, "schema is empty")
}

func TestLoad_UnsupportedType(t *testing.T) {
	_, err := Load(context.Background(), "fields.json", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema file type")
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"missing.csv", "missing.xlsx"} {
		_, err := Load(context.Background(), filepath.Join(dir, name), Options{})
		assert.Error(t, err, name)
	}
}

func TestReadCSV_RaggedAndLazy(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("a,b,c\n1\nx\"y,2\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1"}, {"x\"y", "2"}}, rows)
}

func createDB(t *testing.T, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fields.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}

	return path
}

func TestLoad_SQLite(t *testing.T) {
	path := createDB(t,
		`CREATE TABLE invoices ("Invoice Number" TEXT, "Total Amount" REAL, notes TEXT)`,
		`CREATE TABLE other (x TEXT)`,
		`INSERT INTO invoices VALUES ('INV-1', 5.5, NULL)`,
		`INSERT INTO invoices VALUES ('INV-2', 7, 'late')`,
		`INSERT INTO invoices VALUES ('INV-3', 1, '')`,
	)

	t.Run("first table", func(t *testing.T) {
		s, err := Load(context.Background(), path, Options{PreviewRows: 2})
		require.NoError(t, err)

		assert.Equal(t, []string{"Invoice Number", "Total Amount", "notes"}, s.Columns)
		assert.Equal(t, [][]string{{"INV-1", "5.5", ""}, {"INV-2", "7", "late"}}, s.Preview)
		assert.Equal(t, 1, s.MoreRows)
	})

	t.Run("named table", func(t *testing.T) {
		s, err := Load(context.Background(), path, Options{Table: "other"})
		require.NoError(t, err)

		assert.Equal(t, []string{"x"}, s.Columns)
		assert.Empty(t, s.Preview)
		assert.Zero(t, s.MoreRows)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := Load(context.Background(), path, Options{Table: `no "such" table`})
		require.ErrorIs(t, err, ErrEmpty)
	})
}

func TestLoad_SQLiteWithoutTables(t *testing.T) {
	path := createDB(t, `CREATE VIEW v AS SELECT 1 AS one`)

	_, err := Load(context.Background(), path, Options{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"plain"`, quoteIdent("plain"))
	assert.Equal(t, `"a ""b"" c"`, quoteIdent(`a "b" c`))
}
