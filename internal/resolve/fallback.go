package resolve

import (
	"regexp"
	"strings"

	"docfield-mapper/internal/extract"
	"docfield-mapper/internal/match"
)

var spaceRun = regexp.MustCompile(extract.SpacePattern + `+`)

// fieldPattern quotes field for use in a regexp and lets every internal
// whitespace run match any amount of whitespace, including none.
func fieldPattern(field string) string {
	quoted := regexp.QuoteMeta(strings.ToValidUTF8(field, "\uFFFD"))

	return spaceRun.ReplaceAllLiteralString(quoted, extract.SpacePattern+`*`)
}

// proximityPattern matches the field name anywhere on a line, followed by
// an optional separator and leader dots, and captures the rest of the line.
func proximityPattern(field string) (*regexp.Regexp, error) {
	ws := extract.SpacePattern

	return regexp.Compile(`(?i)` + fieldPattern(field) +
		ws + `*(?:` + extract.SeparatorPattern + `)?` + ws + `*(?:\.+` + ws + `*)?` +
		`(` + extract.LineCharPattern + `+)$`)
}

// adjacentPattern matches a line that is the field name and nothing else,
// optionally followed by a separator.
func adjacentPattern(field string) (*regexp.Regexp, error) {
	ws := extract.SpacePattern

	return regexp.Compile(`(?i)^` + fieldPattern(field) +
		`(?:` + ws + `*` + extract.SeparatorPattern + ws + `*)?$`)
}

// proximity scans the punctuation-folded raw lines in order and returns the
// trimmed capture of the first matching line with its 1-based line number.
// The capture may trim to an empty value.
func (r *Resolver) proximity(field string) (string, int, bool) {
	re, err := proximityPattern(field)
	if err != nil {
		return "", 0, false
	}

	for i, line := range r.cleaned {
		if m := re.FindStringSubmatch(line); m != nil {
			return match.TrimSpace(m[1]), i + 1, true
		}
	}

	return "", 0, false
}

// adjacent finds a normalized line consisting of the field name alone and
// returns the raw line below it when that line is not blank.
func (r *Resolver) adjacent(field string) (string, int, bool) {
	re, err := adjacentPattern(field)
	if err != nil {
		return "", 0, false
	}

	for i := 0; i+1 < len(r.normalized); i++ {
		if !re.MatchString(r.normalized[i]) {
			continue
		}

		if next := match.TrimSpace(r.lines[i+1]); next != "" {
			return next, i + 2, true
		}
	}

	return "", 0, false
}
