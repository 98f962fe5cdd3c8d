package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func disableColor(t *testing.T) {
	t.Helper()

	prev := color.NoColor
	color.NoColor = true

	t.Cleanup(func() { color.NoColor = prev })
}

func TestRenderTable(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name     string
		header   []string
		rows     [][]cell
		maxWidth int
		want     string
	}{
		{
			name:   "aligned columns",
			header: []string{"A", "BB"},
			rows:   [][]cell{{plain("xxx"), plain("y")}},
			want:   "A    BB\nxxx  y\n",
		},
		{
			name:     "last column truncated",
			header:   []string{"A", "BB"},
			rows:     [][]cell{{plain("xxx"), plain("hello world")}},
			maxWidth: 10,
			want:     "A    BB\nxxx  hell…\n",
		},
		{
			name:   "wide runes measured in cells",
			header: []string{"K", "V"},
			rows:   [][]cell{{plain("名前"), plain("1")}, {plain("ab"), styled("2", resolvedStyle)}},
			want:   "K     V\n名前  1\nab    2\n",
		},
		{
			name:   "short rows padded",
			header: []string{"A", "B", "C"},
			rows:   [][]cell{{plain("1")}},
			want:   "A  B  C\n1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			renderTable(&buf, tt.header, tt.rows, tt.maxWidth)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
