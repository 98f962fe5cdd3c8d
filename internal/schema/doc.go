// Package schema loads the expected field names from a tabular source.
//
// The first non-blank row of a CSV file or the first worksheet of an XLSX
// workbook is the header; every trimmed header cell is one expected field.
// SQLite databases contribute the columns of a table. A short preview of
// the data rows is kept for display.
package schema
