package resolve

import (
	"strings"

	"docfield-mapper/internal/extract"
	"docfield-mapper/internal/match"
)

// NotFound is the value assigned to a field no strategy could resolve.
const NotFound = "not found"

// Assignment is the resolved value for one expected field.
type Assignment struct {
	Field string `yaml:"field" json:"field"`
	// Value is the resolved string or NotFound.
	Value    string   `yaml:"value" json:"value"`
	Strategy Strategy `yaml:"strategy" json:"strategy"`
	// Score is the best candidate score seen, whichever strategy won.
	Score float64 `yaml:"score" json:"score"`
	// Label is the winning candidate label (StrategyCandidate only).
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	// Line is the 1-based raw line holding the value (fallback strategies only).
	Line int `yaml:"line,omitempty" json:"line,omitempty"`
}

// Resolved reports whether a strategy produced a value.
func (a Assignment) Resolved() bool {
	return a.Strategy != StrategyNone
}

// Resolver resolves fields against a single document. Candidate pairs and
// per-line forms are computed once in NewResolver; a Resolver is read-only
// afterwards and safe for concurrent use. Do not reuse one across documents.
type Resolver struct {
	lines      []string
	cleaned    []string
	normalized []string
	candidates []extract.Pair
}

// NewResolver prepares a Resolver for the given document lines.
func NewResolver(lines []string) *Resolver {
	r := &Resolver{
		lines:      lines,
		cleaned:    make([]string, len(lines)),
		normalized: make([]string, len(lines)),
		candidates: extract.Extract(lines),
	}

	for i, l := range lines {
		r.cleaned[i] = match.CleanLine(l)
		r.normalized[i] = match.Normalize(l)
	}

	return r
}

// Resolve returns one assignment per field, in field order.
func Resolve(fields, lines []string) []Assignment {
	return NewResolver(lines).Resolve(fields)
}

// Resolve returns one assignment per field, in field order. Duplicate
// fields are resolved independently.
func (r *Resolver) Resolve(fields []string) []Assignment {
	assignments := make([]Assignment, len(fields))
	for i, f := range fields {
		assignments[i] = r.ResolveField(f)
	}

	return assignments
}

// ResolveField resolves a single expected field.
func (r *Resolver) ResolveField(field string) Assignment {
	a := Assignment{Field: field, Value: NotFound, Strategy: StrategyNone}

	idx, score := r.bestCandidate(field)
	a.Score = score

	// A winning candidate is final even when stripping leaves its value empty.
	if idx >= 0 && score >= match.AcceptThreshold {
		a.Value = trimTrailingPunct(r.candidates[idx].ValueRaw)
		a.Strategy = StrategyCandidate
		a.Label = r.candidates[idx].LabelRaw

		return a
	}

	if v, line, ok := r.proximity(field); ok {
		a.Value, a.Strategy, a.Line = v, StrategyProximity, line

		return a
	}

	if v, line, ok := r.adjacent(field); ok {
		a.Value, a.Strategy, a.Line = v, StrategyAdjacent, line

		return a
	}

	return a
}

// Candidates returns the extracted candidate pairs.
func (r *Resolver) Candidates() []extract.Pair {
	return r.candidates
}

// Lines returns the raw document lines.
func (r *Resolver) Lines() []string {
	return r.lines
}

// bestCandidate folds over the candidates and returns the index and score
// of the first strictly-best one, or -1 when nothing scores above zero.
func (r *Resolver) bestCandidate(field string) (int, float64) {
	fieldNorm := match.Normalize(field)

	best, bestScore := -1, 0.0

	for i := range r.candidates {
		if s := match.ScoreNormalized(fieldNorm, r.candidates[i].LabelNormalized); s > bestScore {
			best, bestScore = i, s
		}
	}

	return best, bestScore
}

// trimTrailingPunct strips a trailing run of '|', ';' and ','.
func trimTrailingPunct(v string) string {
	return strings.TrimRight(v, "|;,")
}
