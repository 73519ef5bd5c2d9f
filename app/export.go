package app

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"paylens/app/filter"
)

// ExportFilename returns the download name for a filtered export,
// stamped with the given date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("filtered_employee_data_%s.csv", now.Format("20060102"))
}

// ExportCSV renders the rows matching the filter state as CSV with the
// original header. The export reflects exactly what the dashboard
// shows: dropped-date rows are absent, filters applied.
func (a *App) ExportCSV(state *filter.State) ([]byte, string, error) {
	_, normalized, roleMap, _ := a.snapshot()
	if normalized == nil {
		return nil, "", fmt.Errorf("no dataset loaded")
	}

	filtered := filter.Apply(normalized, roleMap, state)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(filtered.Table.Header); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range filtered.Table.Rows {
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), ExportFilename(time.Now()), nil
}
