package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/resolve"
)

// MetadataResolveFields describes the resolve_fields tool.
var MetadataResolveFields = &mcp.Tool{
	Name: "resolve_fields",
	Description: "Find the value of each expected field in document text. " +
		"Label: value pairs are mined from the text and scored against every field name; " +
		"the best pair wins when its score is at least 0.45. Otherwise the field name is searched " +
		"for directly on each line and then as a heading above its value. " +
		"Fields that cannot be resolved get the value \"not found\". " +
		"One assignment is returned per field, in field order.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"fields"},
		"properties": merge(documentProperties, map[string]interface{}{
			"fields": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Expected field names, for example the header row of a CSV file.",
			},
		}),
	},
}

// InputResolveFields is the input for the ResolveFields tool.
type InputResolveFields struct {
	Text   string   `json:"text"`
	Lines  []string `json:"lines"`
	Fields []string `json:"fields"`
}

// Assignment is one resolved field.
type Assignment struct {
	Field    string  `json:"field"`
	Value    string  `json:"value"`
	Strategy string  `json:"strategy"`
	Score    float64 `json:"score"`
	Label    string  `json:"label,omitempty"`
	Line     int     `json:"line,omitempty"`
}

// OutputResolveFields is the output for the ResolveFields tool.
type OutputResolveFields struct {
	Assignments []Assignment `json:"assignments"`
	// Resolved counts the fields that got a value.
	Resolved    int                     `json:"resolved"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// ResolveFields resolves the expected fields against the document.
func ResolveFields(_ context.Context, _ *mcp.CallToolRequest, input InputResolveFields) (*mcp.CallToolResult, OutputResolveFields, error) {
	if len(input.Fields) == 0 {
		return nil, OutputResolveFields{}, fmt.Errorf("fields is required")
	}

	lines, err := documentLines(input.Text, input.Lines)
	if err != nil {
		return nil, OutputResolveFields{}, err
	}

	assignments := resolve.Resolve(input.Fields, lines)
	diags := resolve.Diagnose(assignments)

	out := OutputResolveFields{
		Assignments: make([]Assignment, len(assignments)),
		Diagnostics: diags.All(),
	}

	for i, a := range assignments {
		out.Assignments[i] = Assignment{
			Field:    a.Field,
			Value:    a.Value,
			Strategy: a.Strategy.String(),
			Score:    a.Score,
			Label:    a.Label,
			Line:     a.Line,
		}

		if a.Resolved() {
			out.Resolved++
		}
	}

	slog.Debug("resolve_fields", "fields", len(input.Fields), "lines", len(lines), "resolved", out.Resolved)

	return nil, out, nil
}

func merge(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})

	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}
