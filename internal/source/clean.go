package source

import (
	"regexp"
	"strings"

	"docfield-mapper/internal/match"
)

var (
	// trailingSpace also swallows blank lines, since newlines are spaces too.
	trailingSpace = regexp.MustCompile(`[` + match.SpaceClass + `]+\n`)
	lineBreak     = regexp.MustCompile(`\r?\n`)
)

// CleanPage folds NBSP, dash and colon variants, drops whitespace before
// every newline and trims the page.
func CleanPage(text string) string {
	text = match.CleanLine(text)
	text = trailingSpace.ReplaceAllLiteralString(text, "\n")

	return match.TrimSpace(text)
}

// JoinPages concatenates cleaned pages, each followed by a blank line.
func JoinPages(pages []string) string {
	var sb strings.Builder

	for _, p := range pages {
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// SplitLines splits text on LF or CRLF. Empty lines are kept so that line
// numbers stay stable.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	return lineBreak.Split(text, -1)
}
