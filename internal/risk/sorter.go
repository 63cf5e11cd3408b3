package risk

import (
	"sort"
)

// SeverityPriority returns a sort priority (lower = more severe).
func SeverityPriority(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// CanonicalSort orders assessments by the deterministic display rules:
// 1. Severity: critical > high > medium > low
// 2. Score: higher first
// 3. Open risks before mitigated/closed ones
// 4. Title: lexical ascending
// 5. Record ID: lexical ascending
func CanonicalSort(assessments []Assessment) {
	sort.SliceStable(assessments, func(i, j int) bool {
		a, b := assessments[i], assessments[j]

		// 1. Severity priority
		sevA, sevB := SeverityPriority(a.Severity), SeverityPriority(b.Severity)
		if sevA != sevB {
			return sevA < sevB
		}

		// 2. Score (higher first)
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		// 3. Open before resolved
		openA, openB := a.Record.IsOpen(), b.Record.IsOpen()
		if openA != openB {
			return openA
		}

		// 4. Title (lexical)
		if a.Record.Title != b.Record.Title {
			return a.Record.Title < b.Record.Title
		}

		// 5. Record ID (lexical)
		return a.Record.ID < b.Record.ID
	})
}
