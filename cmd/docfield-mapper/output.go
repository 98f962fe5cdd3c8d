package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/report"
	"docfield-mapper/internal/resolve"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatCSV   = "csv"
	// formatXLSX is only chosen from an output file extension.
	formatXLSX = "xlsx"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatYAML, formatCSV:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, yaml or csv)", format)
	}
}

// formatForPath picks an output format from a file extension.
func formatForPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".csv":
		return formatCSV
	case ".xlsx":
		return formatXLSX
	default:
		return fallback
	}
}

// result is everything a map-like command produces for one document.
type result struct {
	document    string
	schema      string
	assignments []resolve.Assignment
	diagnostics diagnostic.Diagnostics
}

func (r *result) write(w io.Writer, format string, width int) error {
	switch format {
	case formatYAML:
		data, err := report.Marshal(report.New(r.document, r.schema, r.assignments, r.diagnostics))
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		_, err = w.Write(data)

		return err
	case formatCSV:
		return report.WriteCSV(w, r.assignments)
	case formatXLSX:
		return report.WriteXLSX(w, r.assignments)
	default:
		writeAssignments(w, r.assignments, width)
		writeDiagnostics(w, r.diagnostics)

		return nil
	}
}

// writeFile writes the result to path in the format its extension implies.
func (r *result) writeFile(path, fallback string) error {
	var buf bytes.Buffer

	format := formatForPath(path, fallback)
	if format == formatTable {
		format = formatYAML
	}

	if err := r.write(&buf, format, 0); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func strategyStyle(a resolve.Assignment) cell {
	name := strings.ToLower(a.Strategy.String())

	switch a.Strategy {
	case resolve.StrategyCandidate:
		return styled(name, resolvedStyle)
	case resolve.StrategyProximity, resolve.StrategyAdjacent:
		return styled(name, fallbackStyle)
	default:
		return styled("-", missingStyle)
	}
}

func writeAssignments(w io.Writer, assignments []resolve.Assignment, width int) {
	rows := make([][]cell, len(assignments))

	for i, a := range assignments {
		value := plain(a.Value)
		if !a.Resolved() {
			value = styled(a.Value, missingStyle)
		}

		rows[i] = []cell{
			plain(a.Field),
			strategyStyle(a),
			plain(strconv.FormatFloat(a.Score, 'f', 2, 64)),
			value,
		}
	}

	renderTable(w, []string{"FIELD", "STRATEGY", "SCORE", "VALUE"}, rows, width)
}

func writeDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	if d.Len() == 0 {
		return
	}

	fmt.Fprintln(w)

	for _, e := range d.Errors {
		fmt.Fprintln(w, missingStyle.Sprint("error:"), e.String())
	}

	for _, e := range d.Warnings {
		fmt.Fprintln(w, fallbackStyle.Sprint("warning:"), e.String())
	}

	for _, e := range d.Infos {
		fmt.Fprintln(w, dimStyle.Sprint("info:"), e.String())
	}
}
