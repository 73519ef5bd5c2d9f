package agg

import (
	"math"

	"paylens/app/dates"
	"paylens/app/roles"
)

// Banding of continuous columns into fixed labeled ranges. Bands are
// contiguous and ordered; a value belongs to the first band whose upper
// edge it does not exceed, so every in-range value gets exactly one
// label. Values below zero or beyond the last finite edge of a
// non-open-ended banding fall outside all bands and are excluded.

// Band is one labeled range with an inclusive upper edge.
type Band struct {
	Label string
	Upper float64 // +Inf for the open-ended last band
}

// Banding is a fixed set of bands for one continuous role.
type Banding struct {
	Role  roles.Role
	Bands []Band
}

// ExperienceBanding groups years of experience.
var ExperienceBanding = Banding{
	Role: roles.Experience,
	Bands: []Band{
		{Label: "0-2 years", Upper: 2},
		{Label: "3-5 years", Upper: 5},
		{Label: "6-10 years", Upper: 10},
		{Label: "11-20 years", Upper: 20},
		{Label: "20+ years", Upper: math.Inf(1)},
	},
}

// AgeBanding groups employee age.
var AgeBanding = Banding{
	Role: roles.Age,
	Bands: []Band{
		{Label: "<25", Upper: 25},
		{Label: "26-35", Upper: 35},
		{Label: "36-45", Upper: 45},
		{Label: "46-55", Upper: 55},
		{Label: "55+", Upper: math.Inf(1)},
	},
}

// Assign returns the band label for a value, or false when the value
// falls outside every band (negative, or NaN).
func (b Banding) Assign(v float64) (string, bool) {
	if math.IsNaN(v) || v < 0 {
		return "", false
	}
	for _, band := range b.Bands {
		if v <= band.Upper {
			return band.Label, true
		}
	}
	return "", false
}

// ActiveBanding picks which continuous role to band for the trends view.
// Experience is preferred when both roles resolve; false when neither
// does. Only one banding is active per view.
func ActiveBanding(roleMap *roles.RoleMap) (Banding, bool) {
	if roleMap.Has(roles.Experience) {
		return ExperienceBanding, true
	}
	if roleMap.Has(roles.Age) {
		return AgeBanding, true
	}
	return Banding{}, false
}

// BandStat is one band's mean salary and row count.
type BandStat struct {
	Label string  `json:"label"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// BandMeans buckets rows by the banding's role and computes mean salary
// per band, in band order. Bands that end up empty are omitted; rows
// whose band value or salary fails to parse are excluded.
func BandMeans(n *dates.Normalized, roleMap *roles.RoleMap, banding Banding) []BandStat {
	bandCol, ok := roleMap.Column(banding.Role)
	if !ok {
		return nil
	}
	salaryCol, ok := roleMap.Column(roles.Salary)
	if !ok {
		return nil
	}

	grouped := make(map[string][]float64)
	for i := range n.Table.Rows {
		v, ok := ParseNumber(n.Table.Cell(i, bandCol))
		if !ok {
			continue
		}
		label, ok := banding.Assign(v)
		if !ok {
			continue
		}
		if s, ok := ParseNumber(n.Table.Cell(i, salaryCol)); ok {
			grouped[label] = append(grouped[label], s)
		}
	}

	stats := make([]BandStat, 0, len(banding.Bands))
	for _, band := range banding.Bands {
		values, ok := grouped[band.Label]
		if !ok {
			continue
		}
		m, _ := mean(values)
		stats = append(stats, BandStat{Label: band.Label, Mean: m, Count: len(values)})
	}
	return stats
}
