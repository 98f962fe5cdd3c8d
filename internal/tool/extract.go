package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"docfield-mapper/internal/extract"
)

// MetadataExtractPairs describes the extract_pairs tool.
var MetadataExtractPairs = &mcp.Tool{
	Name: "extract_pairs",
	Description: "Mine candidate label/value pairs from document text. " +
		"Three layouts are recognized: \"Label: value\" on one line (also = and - as separators), " +
		"a label and value separated by a wide gap of spaces, and a label on its own line with the value " +
		"on the next non-empty line. Pairs are deduplicated and returned in document order.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": documentProperties,
	},
}

// InputExtractPairs is the input for the ExtractPairs tool.
type InputExtractPairs struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}

// Pair is one mined label/value pair.
type Pair struct {
	Label           string `json:"label"`
	LabelNormalized string `json:"label_normalized"`
	Value           string `json:"value"`
	Layout          string `json:"layout"`
}

// OutputExtractPairs is the output for the ExtractPairs tool.
type OutputExtractPairs struct {
	Pairs []Pair `json:"pairs"`
}

// ExtractPairs returns the candidate pairs found in the document.
func ExtractPairs(_ context.Context, _ *mcp.CallToolRequest, input InputExtractPairs) (*mcp.CallToolResult, OutputExtractPairs, error) {
	lines, err := documentLines(input.Text, input.Lines)
	if err != nil {
		return nil, OutputExtractPairs{}, err
	}

	pairs := extract.Extract(lines)

	out := OutputExtractPairs{Pairs: make([]Pair, len(pairs))}
	for i, p := range pairs {
		out.Pairs[i] = Pair{
			Label:           p.LabelRaw,
			LabelNormalized: p.LabelNormalized,
			Value:           p.ValueRaw,
			Layout:          p.Layout.String(),
		}
	}

	return nil, out, nil
}
