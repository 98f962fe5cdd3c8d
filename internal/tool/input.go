package tool

import (
	"errors"

	"docfield-mapper/internal/source"
)

var errNoDocument = errors.New("text or lines is required")

// documentLines returns lines when given, otherwise the cleaned and split
// text.
func documentLines(text string, lines []string) ([]string, error) {
	if len(lines) > 0 {
		return lines, nil
	}

	if text == "" {
		return nil, errNoDocument
	}

	return source.FromText("input", text, source.DefaultOptions()).Lines, nil
}

var documentProperties = map[string]interface{}{
	"text": map[string]interface{}{
		"type":        "string",
		"description": "Raw document text. It is cleaned and split into lines. Ignored when lines is given.",
	},
	"lines": map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Document text already split into lines, used as is.",
	},
}
