package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const columnGap = 2

var (
	headerStyle   = color.New(color.Bold, color.FgHiWhite)
	resolvedStyle = color.New(color.FgHiGreen)
	fallbackStyle = color.New(color.FgHiYellow)
	missingStyle  = color.New(color.FgHiRed)
	dimStyle      = color.New(color.Faint)
)

// cell is one table cell with an optional style applied after padding.
type cell struct {
	text  string
	style *color.Color
}

func plain(s string) cell { return cell{text: s} }

func styled(s string, c *color.Color) cell { return cell{text: s, style: c} }

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

// renderTable writes rows as aligned columns. Widths are measured in
// terminal cells. When maxWidth is positive the last column is truncated
// to fit.
func renderTable(w io.Writer, header []string, rows [][]cell, maxWidth int) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c.text))
			}
		}
	}

	if maxWidth > 0 && len(widths) > 0 {
		used := 0
		for _, wd := range widths[:len(widths)-1] {
			used += wd + columnGap
		}

		widths[len(widths)-1] = max(min(widths[len(widths)-1], maxWidth-used), 1)
	}

	headerCells := make([]cell, len(header))
	for i, h := range header {
		headerCells[i] = styled(h, headerStyle)
	}

	writeRow(w, headerCells, widths)

	for _, row := range rows {
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, row []cell, widths []int) {
	var sb strings.Builder

	for i, width := range widths {
		var c cell
		if i < len(row) {
			c = row[i]
		}

		text := runewidth.Truncate(c.text, width, "…")
		if i < len(widths)-1 {
			text = runewidth.FillRight(text, width+columnGap)
		}

		if c.style != nil {
			text = c.style.Sprint(text)
		}

		sb.WriteString(text)
	}

	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
}
