package dataset

import (
	"strings"
)

// excelColumnName converts a 0-based index to Excel-style column name.
// Examples: 0 -> A, 1 -> B, 25 -> Z, 26 -> AA, 27 -> AB
func excelColumnName(index int) string {
	result := ""
	index++ // Convert to 1-based for the algorithm

	for index > 0 {
		index-- // Adjust for 0-based letter indexing
		result = string(rune('A'+index%26)) + result
		index /= 26
	}

	return result
}

// NormalizeHeaders replaces empty headers with Excel-style column names.
// All format readers (CSV, XLSX, JSON) run headers through this so a
// column can always be addressed by name.
//
// Rules:
//   - Empty or whitespace-only headers are replaced
//   - Replacements are Unnamed_A, Unnamed_B, ..., Unnamed_Z, Unnamed_AA, ...
//   - Non-empty headers are preserved as-is
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	emptyCount := 0

	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			normalized[i] = "Unnamed_" + excelColumnName(emptyCount)
			emptyCount++
		} else {
			normalized[i] = h
		}
	}

	return normalized
}
