// Package match provides text normalization, Levenshtein distance calculation,
// composite label scoring, and candidate ranking for field matching.
//
// Key functions:
//   - Normalize: canonicalizes noisy document text for comparison
//   - Levenshtein: computes rune-level edit distance between strings
//   - Score: weighted exact/containment/token-set/edit similarity in [0,1]
//   - RankCandidates: ranks candidate labels for an expected field
package match
