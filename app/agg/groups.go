package agg

import (
	"sort"

	"paylens/app/dates"
	"paylens/app/roles"
)

// Package agg computes derived views from the filtered table. Every
// function here is a pure, stateless transform: it reads the filtered
// rows and returns fresh values, recomputed on every filter change.

// GroupStat is one category's salary statistics.
type GroupStat struct {
	Category string  `json:"category"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Count    int     `json:"count"`
}

// GroupStats computes mean, median and count of salary per distinct
// observed value of the grouping role. Categories with zero rows after
// filtering are simply absent; categories whose rows all lack a parseable
// salary are omitted too (there is no statistic to show). Results are
// sorted by category name for stable output.
func GroupStats(n *dates.Normalized, roleMap *roles.RoleMap, groupRole roles.Role) []GroupStat {
	groupCol, ok := roleMap.Column(groupRole)
	if !ok {
		return nil
	}
	salaryCol, ok := roleMap.Column(roles.Salary)
	if !ok {
		return nil
	}

	grouped := make(map[string][]float64)
	for i := range n.Table.Rows {
		cat := n.Table.Cell(i, groupCol)
		if cat == "" {
			continue
		}
		if v, ok := ParseNumber(n.Table.Cell(i, salaryCol)); ok {
			grouped[cat] = append(grouped[cat], v)
		}
	}

	stats := make([]GroupStat, 0, len(grouped))
	for cat, values := range grouped {
		m, _ := mean(values)
		md, _ := median(values)
		stats = append(stats, GroupStat{
			Category: cat,
			Mean:     m,
			Median:   md,
			Count:    len(values),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats
}

// SortByMeanDesc reorders group stats by mean salary, highest first.
// Used by the education view, which ranks levels by pay.
func SortByMeanDesc(stats []GroupStat) []GroupStat {
	sorted := append([]GroupStat(nil), stats...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Mean != sorted[j].Mean {
			return sorted[i].Mean > sorted[j].Mean
		}
		return sorted[i].Category < sorted[j].Category
	})
	return sorted
}

// CategoryCount is one category's row count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts counts rows per distinct observed value of a role,
// independent of salary. Sorted by count descending (ties by name) to
// match value-count semantics; limit > 0 truncates to the top entries.
func CategoryCounts(n *dates.Normalized, roleMap *roles.RoleMap, role roles.Role, limit int) []CategoryCount {
	col, ok := roleMap.Column(role)
	if !ok {
		return nil
	}

	counts := make(map[string]int)
	for i := range n.Table.Rows {
		if v := n.Table.Cell(i, col); v != "" {
			counts[v]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for cat, c := range counts {
		out = append(out, CategoryCount{Category: cat, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DistinctCount returns the number of distinct non-empty values of a
// role's column, or 0 when the role is unresolved.
func DistinctCount(n *dates.Normalized, roleMap *roles.RoleMap, role roles.Role) int {
	col, ok := roleMap.Column(role)
	if !ok {
		return 0
	}
	seen := make(map[string]bool)
	for i := range n.Table.Rows {
		if v := n.Table.Cell(i, col); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}
