package agg

import (
	"sort"
	"strconv"
	"strings"
)

// Numeric cell parsing shared by every aggregation. Dataset cells are
// strings; salary-like values commonly carry currency symbols and
// thousands separators.

// ParseNumber parses a numeric cell, tolerating "$1,234.56" style
// formatting. Returns false for empty or non-numeric values.
func ParseNumber(s string) (float64, bool) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return 0, false
	}
	ss = strings.ReplaceAll(ss, ",", "")
	ss = strings.TrimPrefix(ss, "$")
	ss = strings.TrimPrefix(ss, "€")
	ss = strings.TrimPrefix(ss, "£")
	v, err := strconv.ParseFloat(ss, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// mean returns the arithmetic mean of values; false when empty.
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), true
}

// median returns the middle value (average of the two middle values for
// even counts); false when empty. The input slice is not modified.
func median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}
