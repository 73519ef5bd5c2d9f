package agg

import (
	"math"

	"paylens/app/dates"
	"paylens/app/roles"
)

// Salary projection: a deterministic compounding-growth curve, not a
// statistical forecast. It always starts from the UNFILTERED table's mean
// salary so the projection reads as a whole-population trend regardless
// of the session's active filters.

const (
	// DefaultGrowthRate is the assumed annual salary growth.
	DefaultGrowthRate = 0.03
	// DefaultHorizonYears is the projection horizon beyond the current
	// year (the current year itself is included, so the curve has
	// horizon+1 points).
	DefaultHorizonYears = 5
)

// ProjectionPoint is one projected year.
type ProjectionPoint struct {
	Year   int     `json:"year"`
	Salary float64 `json:"salary"`
}

// Project compounds a mean salary at the given annual rate for
// horizon+1 years starting at startYear. Values are rounded to cents for
// display.
func Project(meanSalary, rate float64, horizon, startYear int) []ProjectionPoint {
	points := make([]ProjectionPoint, 0, horizon+1)
	for i := 0; i <= horizon; i++ {
		v := meanSalary * math.Pow(1+rate, float64(i))
		points = append(points, ProjectionPoint{
			Year:   startYear + i,
			Salary: math.Round(v*100) / 100,
		})
	}
	return points
}

// ProjectFromTable computes the projection baseline from a table's mean
// salary. The caller passes the UNFILTERED table; returns nil when salary
// is unresolved or nothing parses.
func ProjectFromTable(n *dates.Normalized, roleMap *roles.RoleMap, rate float64, horizon, startYear int) []ProjectionPoint {
	salaryCol, ok := roleMap.Column(roles.Salary)
	if !ok {
		return nil
	}
	var values []float64
	for i := range n.Table.Rows {
		if v, ok := ParseNumber(n.Table.Cell(i, salaryCol)); ok {
			values = append(values, v)
		}
	}
	m, ok := mean(values)
	if !ok {
		return nil
	}
	return Project(m, rate, horizon, startYear)
}
