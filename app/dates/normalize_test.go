package dates

import (
	"testing"
	"time"

	"paylens/app/dataset"
	"paylens/app/roles"
)

// TestParseDate tests the date format cascade
func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"iso date", "2021-06-15", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"iso datetime", "2021-06-15 13:45:00", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"rfc3339", "2021-06-15T13:45:00Z", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"us slashes", "06/15/2021", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"month name", "Jun 15, 2021", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"bare year", "2021", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"epoch seconds", "1623758400", time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"whitespace only", "   ", time.Time{}, false},
		{"garbage", "not a date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %t, want %t", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestNormalizeParsesAndDrops tests that unparseable dates drop the row
// and the dropped count is reported
func TestNormalizeParsesAndDrops(t *testing.T) {
	table := &dataset.Table{
		Header: []string{"Hire Date", "Salary"},
		Rows: [][]string{
			{"2020-03-01", "100"},
			{"bogus", "200"},
			{"2021-07-15", "300"},
			{"", "400"},
		},
	}
	rm := roles.Resolve(table.Header)

	n := Normalize(table, rm)
	if n.Synthesized {
		t.Error("Synthesized = true for a table with a date column")
	}
	if n.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", n.Dropped)
	}
	if got := n.Table.NumRows(); got != 2 {
		t.Fatalf("kept %d rows, want 2", got)
	}
	if len(n.Dates) != 2 {
		t.Fatalf("len(Dates) = %d, want 2", len(n.Dates))
	}
	wantMin := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	wantMax := time.Date(2021, 7, 15, 0, 0, 0, 0, time.UTC)
	if !n.MinDate.Equal(wantMin) || !n.MaxDate.Equal(wantMax) {
		t.Errorf("bounds = [%v, %v], want [%v, %v]", n.MinDate, n.MaxDate, wantMin, wantMax)
	}
	// Surviving rows keep their original values
	if n.Table.Cell(0, 1) != "100" || n.Table.Cell(1, 1) != "300" {
		t.Error("surviving rows do not match the parseable originals")
	}
}

// TestNormalizeSynthesizes tests the synthetic date path for datasets
// without a date column
func TestNormalizeSynthesizes(t *testing.T) {
	table := &dataset.Table{
		Header: []string{"Name", "Salary"},
		Rows:   [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}},
	}
	rm := roles.Resolve(table.Header)

	n := Normalize(table, rm)
	if !n.Synthesized {
		t.Fatal("Synthesized = false for a table without a date column")
	}
	if n.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", n.Dropped)
	}
	if len(n.Dates) != 3 {
		t.Fatalf("len(Dates) = %d, want 3", len(n.Dates))
	}
	end := SynthAnchor.AddDate(0, 0, SynthWindowDays)
	for i, d := range n.Dates {
		if d.Before(SynthAnchor) || !d.Before(end) {
			t.Errorf("date %d = %v outside synthesis window [%v, %v)", i, d, SynthAnchor, end)
		}
		if !d.Equal(Day(d)) {
			t.Errorf("date %d = %v is not UTC midnight", i, d)
		}
	}
}
