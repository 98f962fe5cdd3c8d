// Package diagnostic provides structured warnings, errors, and
// "why this field resolved" explanations for field resolution.
//
// Key capabilities:
//   - Unresolved field warnings
//   - Fallback (below threshold) resolution notes
//   - Shared value and duplicate field reports
package diagnostic
