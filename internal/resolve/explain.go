package resolve

import (
	"docfield-mapper/internal/extract"
	"docfield-mapper/internal/match"
)

// Explanation describes how one field was resolved.
type Explanation struct {
	Assignment Assignment
	// Candidates are the top ranked candidate labels for the field.
	Candidates match.CandidateList
	// Ambiguous is set when two or more candidates clear the threshold
	// within match.DefaultAmbiguityThreshold of each other.
	Ambiguous bool
}

// Explain is Resolver.Explain for a single use document.
func Explain(fields, lines []string, topN int) []Explanation {
	return NewResolver(lines).Explain(fields, topN)
}

// Explain resolves fields and reports the topN ranked candidates behind
// each assignment. topN < 0 keeps every candidate.
func (r *Resolver) Explain(fields []string, topN int) []Explanation {
	labels := extract.Labels(r.candidates)
	explanations := make([]Explanation, len(fields))

	for i, f := range fields {
		ranked := match.RankCandidates(f, labels)

		explanations[i] = Explanation{
			Assignment: r.ResolveField(f),
			Candidates: ranked.Top(topN),
			Ambiguous: len(ranked.AboveThreshold(match.AcceptThreshold)) >= 2 &&
				ranked.IsAmbiguous(match.DefaultAmbiguityThreshold),
		}
	}

	return explanations
}

// Pair returns the candidate pair a ranked Candidate refers to.
func (r *Resolver) Pair(c match.Candidate) extract.Pair {
	return r.candidates[c.Index]
}
