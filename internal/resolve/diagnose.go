package resolve

import (
	"fmt"
	"strings"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/match"
)

// Diagnose reports unresolved fields, fallback resolutions, fields bound to
// the same value, and repeated or blank field names.
func Diagnose(assignments []Assignment) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]int, len(assignments))
	byValue := make(map[string][]string)

	var valueOrder []string

	for _, a := range assignments {
		if match.TrimSpace(a.Field) == "" {
			diags.AddWarning(diagnostic.CodeEmptyField, "blank field name resolves against any line", a.Field)
		}

		seen[a.Field]++
		if seen[a.Field] == 2 {
			diags.AddInfo(diagnostic.CodeDuplicateField, "field is listed more than once and resolves independently", a.Field)
		}

		switch a.Strategy {
		case StrategyNone:
			diags.AddWarning(diagnostic.CodeFieldNotFound,
				fmt.Sprintf("no value found (best candidate score %.2f, threshold %.2f)", a.Score, match.AcceptThreshold),
				a.Field)

			continue
		case StrategyProximity, StrategyAdjacent:
			diags.AddInfo(diagnostic.CodeLowConfidence,
				fmt.Sprintf("best candidate score %.2f below threshold; resolved by %s scan at line %d",
					a.Score, strings.ToLower(a.Strategy.String()), a.Line),
				a.Field)
		case StrategyCandidate:
		}

		if seen[a.Field] > 1 || a.Value == "" {
			continue
		}

		if _, ok := byValue[a.Value]; !ok {
			valueOrder = append(valueOrder, a.Value)
		}

		byValue[a.Value] = append(byValue[a.Value], a.Field)
	}

	for _, v := range valueOrder {
		fields := byValue[v]
		if len(fields) < 2 {
			continue
		}

		for _, f := range fields {
			diags.AddInfo(diagnostic.CodeSharedValue,
				fmt.Sprintf("value %q is also bound to %s", v, quoteOthers(fields, f)), f)
		}
	}

	return diags
}

func quoteOthers(fields []string, self string) string {
	var others []string

	for _, f := range fields {
		if f != self {
			others = append(others, fmt.Sprintf("%q", f))
		}
	}

	return strings.Join(others, ", ")
}
