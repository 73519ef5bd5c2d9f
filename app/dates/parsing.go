package dates

import (
	"strconv"
	"strings"
	"time"
)

// Date parsing for the canonical date column. All dates are normalized to
// UTC midnight; intra-day precision is irrelevant to the dashboard, which
// aggregates by day and year.

// dateLayouts is the ordered format cascade tried for every value.
// ISO-style layouts come first since they are the most common in data
// exports; slash layouts assume month-first (US) before day-first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2006",
}

// ParseDate tries several common formats and returns the value truncated
// to UTC midnight. Integer values are treated as epoch seconds or
// milliseconds, matching how timestamps commonly appear in exports.
func ParseDate(s string) (time.Time, bool) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return time.Time{}, false
	}

	// Try integer epoch seconds/milliseconds first; this avoids a pile
	// of failed time.Parse attempts for numeric timestamps
	if n, err := strconv.ParseInt(ss, 10, 64); err == nil {
		// Reject small integers that are plausibly years handled by the
		// "2006" layout below, and anything that cannot be an epoch
		if n >= 100_000_000 {
			if n > 1_000_000_000_000 {
				// Epoch milliseconds (13+ digits)
				return Day(time.UnixMilli(n).UTC()), true
			}
			return Day(time.Unix(n, 0).UTC()), true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, ss); err == nil {
			return Day(t.UTC()), true
		}
	}

	return time.Time{}, false
}

// Day truncates a time to UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
