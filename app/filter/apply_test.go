package filter

import (
	"testing"
	"time"

	"paylens/app/dataset"
	"paylens/app/dates"
	"paylens/app/roles"
)

func testTable() (*dates.Normalized, *roles.RoleMap) {
	table := &dataset.Table{
		Header: []string{"Dept", "Salary", "Gender", "Hire Date"},
		Rows: [][]string{
			{"Eng", "100", "F", "2020-01-10"},
			{"Eng", "200", "M", "2021-05-20"},
			{"Sales", "50", "F", "2022-09-01"},
		},
	}
	rm := roles.Resolve(table.Header)
	return dates.Normalize(table, rm), rm
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// TestApplyEmptyStateIsIdentity tests the "all selected" property
func TestApplyEmptyStateIsIdentity(t *testing.T) {
	n, rm := testTable()

	out := Apply(n, rm, NewState())
	if out.Table.NumRows() != n.Table.NumRows() {
		t.Fatalf("empty state kept %d rows, want %d", out.Table.NumRows(), n.Table.NumRows())
	}
	for i := range n.Table.Rows {
		if out.Table.Cell(i, 0) != n.Table.Cell(i, 0) {
			t.Errorf("row %d changed under empty filter", i)
		}
	}
}

// TestApplyCategorical tests value inclusion sets
func TestApplyCategorical(t *testing.T) {
	n, rm := testTable()

	state := &State{Include: map[roles.Role][]string{
		roles.Gender: {"F"},
	}}
	out := Apply(n, rm, state)
	if out.Table.NumRows() != 2 {
		t.Fatalf("kept %d rows, want 2", out.Table.NumRows())
	}
	for i := 0; i < out.Table.NumRows(); i++ {
		if out.Table.Cell(i, 2) != "F" {
			t.Errorf("row %d gender = %q, want F", i, out.Table.Cell(i, 2))
		}
	}
}

// TestApplyCommutative tests that filter application order does not
// affect the result set
func TestApplyCommutative(t *testing.T) {
	n, rm := testTable()

	deptOnly := &State{Include: map[roles.Role][]string{roles.Department: {"Eng"}}}
	genderOnly := &State{Include: map[roles.Role][]string{roles.Gender: {"F"}}}
	both := &State{Include: map[roles.Role][]string{
		roles.Department: {"Eng"},
		roles.Gender:     {"F"},
	}}

	ab := Apply(Apply(n, rm, deptOnly), rm, genderOnly)
	ba := Apply(Apply(n, rm, genderOnly), rm, deptOnly)
	once := Apply(n, rm, both)

	for name, got := range map[string]*dates.Normalized{"dept-then-gender": ab, "gender-then-dept": ba, "combined": once} {
		if got.Table.NumRows() != 1 {
			t.Errorf("%s kept %d rows, want 1", name, got.Table.NumRows())
			continue
		}
		if got.Table.Cell(0, 1) != "100" {
			t.Errorf("%s kept wrong row (salary %q)", name, got.Table.Cell(0, 1))
		}
	}
}

// TestApplySubset tests that filtering never invents rows
func TestApplySubset(t *testing.T) {
	n, rm := testTable()

	states := []*State{
		NewState(),
		{Include: map[roles.Role][]string{roles.Department: {"Eng", "Sales"}}},
		{Include: map[roles.Role][]string{roles.Department: {"Nope"}}},
		{DateFrom: dayPtr(2021, 1, 1)},
	}

	original := make(map[string]bool)
	for i := range n.Table.Rows {
		original[n.Table.Cell(i, 0)+"|"+n.Table.Cell(i, 1)] = true
	}

	for _, state := range states {
		out := Apply(n, rm, state)
		if out.Table.NumRows() > n.Table.NumRows() {
			t.Errorf("filter grew the table: %d > %d", out.Table.NumRows(), n.Table.NumRows())
		}
		for i := range out.Table.Rows {
			if !original[out.Table.Cell(i, 0)+"|"+out.Table.Cell(i, 1)] {
				t.Errorf("filtered row %d not in the original table", i)
			}
		}
	}
}

// TestApplyDateInterval tests inclusive bounds and the inverted interval
// edge case
func TestApplyDateInterval(t *testing.T) {
	n, rm := testTable()

	tests := []struct {
		name string
		from *time.Time
		to   *time.Time
		want int
	}{
		{"inclusive both ends", dayPtr(2020, 1, 10), dayPtr(2021, 5, 20), 2},
		{"single day", dayPtr(2021, 5, 20), dayPtr(2021, 5, 20), 1},
		{"inverted interval is empty", dayPtr(2022, 1, 1), dayPtr(2020, 1, 1), 0},
		{"open start", nil, dayPtr(2020, 12, 31), 1},
		{"open end", dayPtr(2022, 1, 1), nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(n, rm, &State{DateFrom: tt.from, DateTo: tt.to})
			if out.Table.NumRows() != tt.want {
				t.Errorf("kept %d rows, want %d", out.Table.NumRows(), tt.want)
			}
		})
	}
}

// TestApplyUnresolvedRoleIgnored tests that restricting a role with no
// column has no effect rather than erroring or dropping everything
func TestApplyUnresolvedRoleIgnored(t *testing.T) {
	n, rm := testTable()

	state := &State{Include: map[roles.Role][]string{roles.Country: {"Narnia"}}}
	out := Apply(n, rm, state)
	if out.Table.NumRows() != n.Table.NumRows() {
		t.Errorf("unresolved role changed row count: %d != %d", out.Table.NumRows(), n.Table.NumRows())
	}
}

// TestStateKeyDeterministic tests that equal states produce equal keys
// regardless of value ordering
func TestStateKeyDeterministic(t *testing.T) {
	a := &State{Include: map[roles.Role][]string{
		roles.Department: {"Sales", "Eng"},
		roles.Gender:     {"F"},
	}}
	b := &State{Include: map[roles.Role][]string{
		roles.Gender:     {"F"},
		roles.Department: {"Eng", "Sales"},
	}}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if NewState().Key() != "all" {
		t.Errorf("empty state key = %q, want all", NewState().Key())
	}
	if a.Key() == NewState().Key() {
		t.Error("restricted state collides with the empty key")
	}
}
