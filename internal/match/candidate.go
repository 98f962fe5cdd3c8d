package match

import "sort"

// Candidate represents a scored candidate label for one expected field.
type Candidate struct {
	// Index is the position of the label in the ranked input.
	Index int
	Label string

	// Scoring components
	Breakdown Breakdown
	Score     float64

	// Metadata for debugging/explanation
	NormalizedField string
	NormalizedLabel string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every label against field and returns them sorted by
// score (descending). Ties keep input order, so the first label wins, the same
// as a sequential strictly-greater scan.
func RankCandidates(field string, labels []string) CandidateList {
	candidates := make(CandidateList, 0, len(labels))

	fieldNorm := Normalize(field)

	for i, label := range labels {
		labelNorm := Normalize(label)
		b := BreakdownNormalized(fieldNorm, labelNorm)

		candidates = append(candidates, Candidate{
			Index:           i,
			Label:           label,
			Breakdown:       b,
			Score:           b.Total,
			NormalizedField: fieldNorm,
			NormalizedLabel: labelNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by input index for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidate scores above zero.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 || c[0].Score <= 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	diff := c[0].Score - c[1].Score

	return diff < threshold
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Accepted returns the best candidate if it clears AcceptThreshold.
func (c CandidateList) Accepted() *Candidate {
	best := c.Best()
	if best == nil || best.Score < AcceptThreshold {
		return nil
	}

	return best
}

// DefaultAmbiguityThreshold is the score difference that marks two
// candidates as ambiguous in explanations.
const DefaultAmbiguityThreshold = 0.05
