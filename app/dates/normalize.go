package dates

import (
	"log"
	"math/rand"
	"time"

	"paylens/app/dataset"
	"paylens/app/roles"
)

// Package dates guarantees every row of a loaded dataset has a usable
// date so time-series views always have an axis. Real date columns are
// parsed; datasets without one get synthesized dates, clearly flagged on
// the result so callers can tell demo axes from real data.

// SynthAnchor is the fixed start of the synthesized date window.
var SynthAnchor = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// SynthWindowDays is the width of the synthesized date window: each row
// gets SynthAnchor plus a uniform random offset in [0, SynthWindowDays).
const SynthWindowDays = 1800

// Normalized is a table whose every row carries a canonical date.
type Normalized struct {
	Table *dataset.Table
	// Dates is parallel to Table.Rows; every entry is UTC midnight.
	Dates []time.Time
	// Dropped counts rows rejected because their date failed to parse.
	Dropped int
	// Synthesized is true when no date column resolved and the dates
	// were generated rather than read from the data.
	Synthesized bool
	MinDate     time.Time
	MaxDate     time.Time
}

// Normalize ensures a canonical per-row date for the table.
//
// If the Date role resolved, its column is parsed and rows that fail to
// parse are dropped (counted, not fatal). Otherwise a date is synthesized
// for every row from a fixed anchor and window, solely to unblock the
// time-series views.
func Normalize(table *dataset.Table, roleMap *roles.RoleMap) *Normalized {
	dateCol, hasDate := roleMap.Column(roles.Date)
	if !hasDate {
		return synthesize(table)
	}

	kept := make([][]string, 0, len(table.Rows))
	parsed := make([]time.Time, 0, len(table.Rows))
	dropped := 0

	for i := range table.Rows {
		d, ok := ParseDate(table.Cell(i, dateCol))
		if !ok {
			dropped++
			continue
		}
		kept = append(kept, table.Rows[i])
		parsed = append(parsed, d)
	}

	if dropped > 0 {
		log.Printf("[DATE_NORMALIZE] Dropped %d of %d rows with unparseable %q values",
			dropped, len(table.Rows), roleMap.Name(roles.Date))
	}

	n := &Normalized{
		Table:   &dataset.Table{Header: table.Header, Rows: kept},
		Dates:   parsed,
		Dropped: dropped,
	}
	n.computeBounds()
	return n
}

// synthesize draws a uniformly random date per row from the fixed window.
// This path exists only so downstream time charts have an axis; the
// Synthesized flag lets the interface distinguish it from real data.
func synthesize(table *dataset.Table) *Normalized {
	parsed := make([]time.Time, len(table.Rows))
	for i := range table.Rows {
		parsed[i] = SynthAnchor.AddDate(0, 0, rand.Intn(SynthWindowDays))
	}

	n := &Normalized{
		Table:       table,
		Dates:       parsed,
		Synthesized: true,
	}
	n.computeBounds()
	return n
}

func (n *Normalized) computeBounds() {
	for i, d := range n.Dates {
		if i == 0 || d.Before(n.MinDate) {
			n.MinDate = d
		}
		if i == 0 || d.After(n.MaxDate) {
			n.MaxDate = d
		}
	}
}
