package agg

import (
	"paylens/app/dates"
	"paylens/app/roles"
)

// Metrics are the headline numbers above the charts. Salary statistics
// and distinct counts are present only when their roles resolved; the
// dashboard omits the corresponding widgets otherwise.
type Metrics struct {
	Employees int `json:"employees"`

	MeanSalary   float64 `json:"meanSalary,omitempty"`
	MedianSalary float64 `json:"medianSalary,omitempty"`
	HasSalary    bool    `json:"hasSalary"`

	Departments    int  `json:"departments,omitempty"`
	HasDepartments bool `json:"hasDepartments"`

	Countries    int  `json:"countries,omitempty"`
	HasCountries bool `json:"hasCountries"`
}

// ComputeMetrics derives the headline metrics from the filtered table.
func ComputeMetrics(n *dates.Normalized, roleMap *roles.RoleMap) Metrics {
	m := Metrics{Employees: n.Table.NumRows()}

	if salaryCol, ok := roleMap.Column(roles.Salary); ok {
		var values []float64
		for i := range n.Table.Rows {
			if v, ok := ParseNumber(n.Table.Cell(i, salaryCol)); ok {
				values = append(values, v)
			}
		}
		if avg, ok := mean(values); ok {
			md, _ := median(values)
			m.MeanSalary = avg
			m.MedianSalary = md
			m.HasSalary = true
		}
	}

	if roleMap.Has(roles.Department) {
		m.Departments = DistinctCount(n, roleMap, roles.Department)
		m.HasDepartments = true
	}
	if roleMap.Has(roles.Country) {
		m.Countries = DistinctCount(n, roleMap, roles.Country)
		m.HasCountries = true
	}

	return m
}
