package agg

import (
	"sort"

	"paylens/app/dates"
	"paylens/app/roles"
)

// YearStat is one calendar year's mean salary.
type YearStat struct {
	Year  int     `json:"year"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// AnnualMeans groups rows by the calendar year of their canonical date
// and computes mean salary per year, sorted ascending by year. Rows
// without a parseable salary are excluded.
func AnnualMeans(n *dates.Normalized, roleMap *roles.RoleMap) []YearStat {
	salaryCol, ok := roleMap.Column(roles.Salary)
	if !ok {
		return nil
	}

	grouped := make(map[int][]float64)
	for i := range n.Table.Rows {
		if v, ok := ParseNumber(n.Table.Cell(i, salaryCol)); ok {
			grouped[n.Dates[i].Year()] = append(grouped[n.Dates[i].Year()], v)
		}
	}

	stats := make([]YearStat, 0, len(grouped))
	for year, values := range grouped {
		m, _ := mean(values)
		stats = append(stats, YearStat{Year: year, Mean: m, Count: len(values)})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Year < stats[j].Year })
	return stats
}
