package match

import "strings"

// Composite score weights. They are fixed; matching outcomes near
// AcceptThreshold depend on these exact values.
const (
	ExactMatchWeight     = 0.65
	ContainmentWeight    = 0.25
	TokenSetWeight       = 0.6
	EditSimilarityWeight = 0.35

	// AcceptThreshold is the minimum score for a candidate label to win a field.
	AcceptThreshold = 0.45
)

// Breakdown holds the individual terms of a composite score.
type Breakdown struct {
	Exact          float64 `yaml:"exact" json:"exact"`
	Containment    float64 `yaml:"containment" json:"containment"`
	TokenSet       float64 `yaml:"token_set" json:"token_set"`
	EditSimilarity float64 `yaml:"edit_similarity" json:"edit_similarity"`
	Total          float64 `yaml:"total" json:"total"`
}

// Score computes the bounded similarity between an expected field name and
// a candidate label. Both are normalized first; an empty side scores 0.
func Score(header, label string) float64 {
	return ScoreNormalized(Normalize(header), Normalize(label))
}

// ScoreNormalized is Score for inputs that are already normalized.
func ScoreNormalized(h, k string) float64 {
	return BreakdownNormalized(h, k).Total
}

// BreakdownNormalized computes every score term for normalized inputs.
// All terms accumulate; an exact match also collects the other three and
// saturates through clamping.
func BreakdownNormalized(h, k string) Breakdown {
	var b Breakdown

	if h == "" || k == "" {
		return b
	}

	score := 0.0

	if h == k {
		b.Exact = ExactMatchWeight
		score += b.Exact
	}

	if strings.Contains(k, h) || strings.Contains(h, k) {
		b.Containment = ContainmentWeight
		score += b.Containment
	}

	b.TokenSet = TokenSetWeight * Jaccard(strings.FieldsFunc(h, IsSpace), strings.FieldsFunc(k, IsSpace))
	score += b.TokenSet

	b.EditSimilarity = EditSimilarityWeight * LevenshteinNormalized(h, k)
	score += b.EditSimilarity

	b.Total = max(0, min(1, score))

	return b
}
