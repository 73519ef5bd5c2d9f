package agg

import (
	"sort"

	"paylens/app/dates"
	"paylens/app/roles"
)

// Salary distribution histogram: equal-width bins over the filtered
// salary range, with counts split per department when the Department
// role resolved (one series per department, mirroring a stacked chart).

// DefaultHistogramBins matches the distribution chart's bin count.
const DefaultHistogramBins = 30

// HistogramSeries is one department's per-bin counts.
type HistogramSeries struct {
	Label  string `json:"label"`
	Counts []int  `json:"counts"`
}

// SalaryHistogram is the full distribution: n+1 edges delimit n bins.
type SalaryHistogram struct {
	BinEdges []float64         `json:"binEdges"`
	Series   []HistogramSeries `json:"series"`
}

// SalaryDistribution bins filtered salaries into equal-width buckets.
// Bins span the observed min..max; a value on an interior edge belongs to
// the higher bin, and the max value lands in the last bin. When every
// salary is identical the histogram collapses to a single bin. Returns
// nil when salary is unresolved or no value parses.
func SalaryDistribution(n *dates.Normalized, roleMap *roles.RoleMap, bins int) *SalaryHistogram {
	salaryCol, ok := roleMap.Column(roles.Salary)
	if !ok {
		return nil
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	deptCol, hasDept := roleMap.Column(roles.Department)

	type sample struct {
		value float64
		dept  string
	}
	var samples []sample
	minV, maxV := 0.0, 0.0
	for i := range n.Table.Rows {
		v, ok := ParseNumber(n.Table.Cell(i, salaryCol))
		if !ok {
			continue
		}
		dept := ""
		if hasDept {
			dept = n.Table.Cell(i, deptCol)
		}
		if len(samples) == 0 || v < minV {
			minV = v
		}
		if len(samples) == 0 || v > maxV {
			maxV = v
		}
		samples = append(samples, sample{value: v, dept: dept})
	}
	if len(samples) == 0 {
		return nil
	}

	if minV == maxV {
		bins = 1
	}
	width := (maxV - minV) / float64(bins)

	edges := make([]float64, bins+1)
	for i := 0; i <= bins; i++ {
		edges[i] = minV + width*float64(i)
	}
	edges[bins] = maxV

	countsByDept := make(map[string][]int)
	for _, s := range samples {
		idx := bins - 1
		if width > 0 {
			idx = int((s.value - minV) / width)
			if idx >= bins {
				idx = bins - 1
			}
		} else {
			idx = 0
		}
		if _, ok := countsByDept[s.dept]; !ok {
			countsByDept[s.dept] = make([]int, bins)
		}
		countsByDept[s.dept][idx]++
	}

	labels := make([]string, 0, len(countsByDept))
	for dept := range countsByDept {
		labels = append(labels, dept)
	}
	sort.Strings(labels)

	series := make([]HistogramSeries, 0, len(labels))
	for _, label := range labels {
		series = append(series, HistogramSeries{Label: label, Counts: countsByDept[label]})
	}

	return &SalaryHistogram{BinEdges: edges, Series: series}
}
