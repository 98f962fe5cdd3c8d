package extract

import (
	"regexp"

	"docfield-mapper/internal/match"
)

// Pattern fragments shared with the resolver's fallback scans.
const (
	// SpacePattern matches one whitespace rune (see match.IsSpace).
	SpacePattern = `[` + match.SpaceClass + `]`
	// SeparatorPattern matches one label/value separator.
	SeparatorPattern = `[:=\-]`
	// LineCharPattern matches any rune except line terminators.
	LineCharPattern = `[^\n\r\x{2028}\x{2029}]`

	labelClass = `[\p{L}\p{N}` + match.SpaceClass + `()/&.\-]`
	label      = `(` + labelClass + `{2,60})`
	ws         = SpacePattern
	sep        = SeparatorPattern
	lineChar   = LineCharPattern
)

var (
	inlinePattern    = regexp.MustCompile(`^` + label + ws + `*` + sep + ws + `*(?:\.+` + ws + `*)?(` + lineChar + `+)$`)
	wideGapPattern   = regexp.MustCompile(`^` + label + `[ \t]{2,}(` + lineChar + `{2,})$`)
	labelOnlyPattern = regexp.MustCompile(`^` + label + ws + `*` + sep + `?` + ws + `*$`)
)

// Layout identifies which line layout produced a pair.
type Layout int

const (
	LayoutInline Layout = iota
	LayoutWideGap
	LayoutLabelAbove
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutInline:
		return "inline"
	case LayoutWideGap:
		return "wide-gap"
	case LayoutLabelAbove:
		return "label-above"
	default:
		return "unknown"
	}
}

// Pair is a candidate (label, value) unit mined from document text.
type Pair struct {
	LabelRaw        string `yaml:"label" json:"label"`
	LabelNormalized string `yaml:"label_normalized" json:"label_normalized"`
	ValueRaw        string `yaml:"value" json:"value"`

	// Layout and Line (0-indexed into the cleaned, non-empty lines) record
	// where the pair came from.
	Layout Layout `yaml:"-" json:"-"`
	Line   int    `yaml:"-" json:"-"`
}

type pairKey struct {
	label string
	value string
}

// Extract scans lines top to bottom and returns the candidate pairs found,
// deduplicated by (normalized label, raw value) with the first occurrence
// kept. The result is deterministic for a given input.
func Extract(lines []string) []Pair {
	cleaned := Preprocess(lines)

	var pairs []Pair

	for i := 0; i < len(cleaned); i++ {
		line := cleaned[i]

		if m := inlinePattern.FindStringSubmatch(line); m != nil {
			pairs = appendPair(pairs, m[1], m[2], LayoutInline, i)

			continue
		}

		if m := wideGapPattern.FindStringSubmatch(line); m != nil {
			pairs = appendPair(pairs, m[1], m[2], LayoutWideGap, i)

			continue
		}

		if m := labelOnlyPattern.FindStringSubmatch(line); m != nil && i+1 < len(cleaned) {
			if next := match.TrimSpace(cleaned[i+1]); next != "" {
				pairs = appendPair(pairs, m[1], next, LayoutLabelAbove, i)
				i++
			}
		}
	}

	return dedupe(pairs)
}

// Preprocess folds NBSP, dash and colon variants, trims every line and
// drops the lines left empty.
func Preprocess(lines []string) []string {
	cleaned := make([]string, 0, len(lines))

	for _, l := range lines {
		if l = match.TrimSpace(match.CleanLine(l)); l != "" {
			cleaned = append(cleaned, l)
		}
	}

	return cleaned
}

func appendPair(pairs []Pair, rawLabel, rawValue string, layout Layout, line int) []Pair {
	labelRaw := match.TrimSpace(rawLabel)
	valueRaw := match.TrimSpace(rawValue)
	labelNorm := match.Normalize(labelRaw)

	if labelNorm == "" || valueRaw == "" {
		return pairs
	}

	return append(pairs, Pair{
		LabelRaw:        labelRaw,
		LabelNormalized: labelNorm,
		ValueRaw:        valueRaw,
		Layout:          layout,
		Line:            line,
	})
}

func dedupe(pairs []Pair) []Pair {
	seen := make(map[pairKey]struct{}, len(pairs))
	result := make([]Pair, 0, len(pairs))

	for _, p := range pairs {
		key := pairKey{label: p.LabelNormalized, value: p.ValueRaw}
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, p)
	}

	return result
}

// Labels returns the raw labels of pairs in order.
func Labels(pairs []Pair) []string {
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = p.LabelRaw
	}

	return labels
}
