package filter

import (
	"time"

	"paylens/app/dataset"
	"paylens/app/dates"
	"paylens/app/roles"
)

// Apply reduces the table to rows inside every active restriction. Roles
// in the state that did not resolve to a column are ignored. The result
// shares row slices with the input (no cell copying); filtering is a
// subset operation, so an empty state returns a table with the same rows.
//
// A collapsed or inverted date interval (from > to) matches nothing by
// definition; it is an empty result, not an error.
func Apply(n *dates.Normalized, roleMap *roles.RoleMap, state *State) *dates.Normalized {
	if state.IsEmpty() {
		return &dates.Normalized{
			Table:       &dataset.Table{Header: n.Table.Header, Rows: n.Table.Rows},
			Dates:       n.Dates,
			Synthesized: n.Synthesized,
			MinDate:     n.MinDate,
			MaxDate:     n.MaxDate,
		}
	}

	// Pre-build a membership set per restricted, resolved role
	type roleSet struct {
		col int
		set map[string]bool
	}
	var sets []roleSet
	for _, r := range roles.All {
		vals, ok := state.Include[r]
		if !ok || vals == nil {
			continue
		}
		col, resolved := roleMap.Column(r)
		if !resolved {
			continue
		}
		set := make(map[string]bool, len(vals))
		for _, v := range vals {
			set[v] = true
		}
		sets = append(sets, roleSet{col: col, set: set})
	}

	kept := make([][]string, 0, len(n.Table.Rows))
	keptDates := make([]time.Time, 0, len(n.Dates))

	for i := range n.Table.Rows {
		pass := true
		for _, rs := range sets {
			if !rs.set[n.Table.Cell(i, rs.col)] {
				pass = false
				break
			}
		}
		if !pass {
			continue
		}
		d := n.Dates[i]
		if state.DateFrom != nil && d.Before(dates.Day(*state.DateFrom)) {
			continue
		}
		if state.DateTo != nil && d.After(dates.Day(*state.DateTo)) {
			continue
		}
		kept = append(kept, n.Table.Rows[i])
		keptDates = append(keptDates, d)
	}

	out := &dates.Normalized{
		Table:       &dataset.Table{Header: n.Table.Header, Rows: kept},
		Dates:       keptDates,
		Synthesized: n.Synthesized,
	}
	for i, d := range keptDates {
		if i == 0 || d.Before(out.MinDate) {
			out.MinDate = d
		}
		if i == 0 || d.After(out.MaxDate) {
			out.MaxDate = d
		}
	}
	return out
}
