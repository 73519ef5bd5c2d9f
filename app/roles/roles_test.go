package roles

import (
	"testing"
)

// TestResolveKeywordMatching tests role assignment by keyword matching
func TestResolveKeywordMatching(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		role     Role
		wantCol  int
		wantName string
	}{
		{
			name:     "exact salary column",
			header:   []string{"Name", "Salary", "Dept"},
			role:     Salary,
			wantCol:  1,
			wantName: "Salary",
		},
		{
			name:     "substring match is case-insensitive",
			header:   []string{"ANNUAL_SALARY_USD"},
			role:     Salary,
			wantCol:  0,
			wantName: "ANNUAL_SALARY_USD",
		},
		{
			name:     "dept abbreviation",
			header:   []string{"Employee", "Dept"},
			role:     Department,
			wantCol:  1,
			wantName: "Dept",
		},
		{
			name:     "sex matches gender role",
			header:   []string{"Sex", "Salary"},
			role:     Gender,
			wantCol:  0,
			wantName: "Sex",
		},
		{
			name:     "years matches experience role",
			header:   []string{"Years of Service"},
			role:     Experience,
			wantCol:  0,
			wantName: "Years of Service",
		},
		{
			name:     "degree matches education role",
			header:   []string{"Highest Degree"},
			role:     Education,
			wantCol:  0,
			wantName: "Highest Degree",
		},
		{
			name:     "location matches country role",
			header:   []string{"Office Location"},
			role:     Country,
			wantCol:  0,
			wantName: "Office Location",
		},
		{
			name:     "first match by column order wins",
			header:   []string{"Start Date", "End Date"},
			role:     Date,
			wantCol:  0,
			wantName: "Start Date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := Resolve(tt.header)
			col, ok := rm.Column(tt.role)
			if !ok {
				t.Fatalf("role %s did not resolve", tt.role)
			}
			if col != tt.wantCol {
				t.Errorf("column = %d, want %d", col, tt.wantCol)
			}
			if got := rm.Name(tt.role); got != tt.wantName {
				t.Errorf("name = %q, want %q", got, tt.wantName)
			}
		})
	}
}

// TestResolveUnresolved tests that missing columns leave roles absent
func TestResolveUnresolved(t *testing.T) {
	rm := Resolve([]string{"Name", "ID", "Email"})
	for _, r := range All {
		if _, ok := rm.Column(r); ok {
			t.Errorf("role %s resolved unexpectedly", r)
		}
	}
	if rm.Has(Salary) {
		t.Error("Has(Salary) = true for header with no salary column")
	}
	if got := len(rm.Resolved()); got != 0 {
		t.Errorf("Resolved() has %d entries, want 0", got)
	}
}

// TestResolveDeterministic tests that repeated runs on the same header
// produce identical role maps
func TestResolveDeterministic(t *testing.T) {
	header := []string{"Date Hired", "Department", "Gender", "Age", "Experience", "Education", "Country", "Base Salary"}
	first := Resolve(header)
	for i := 0; i < 50; i++ {
		rm := Resolve(header)
		for _, r := range All {
			wantCol, wantOK := first.Column(r)
			gotCol, gotOK := rm.Column(r)
			if wantOK != gotOK || wantCol != gotCol {
				t.Fatalf("run %d: role %s resolved to (%d,%t), want (%d,%t)", i, r, gotCol, gotOK, wantCol, wantOK)
			}
		}
	}
}

// TestResolveStopsAtFirstMatch verifies that a later, more exact column
// name does not displace an earlier substring match
func TestResolveStopsAtFirstMatch(t *testing.T) {
	rm := Resolve([]string{"salary_band", "salary"})
	col, ok := rm.Column(Salary)
	if !ok || col != 0 {
		t.Errorf("Column(Salary) = (%d,%t), want (0,true)", col, ok)
	}
}

// TestParseRole round-trips role names
func TestParseRole(t *testing.T) {
	for _, r := range All {
		got, ok := ParseRole(r.String())
		if !ok || got != r {
			t.Errorf("ParseRole(%q) = (%v,%t), want (%v,true)", r.String(), got, ok, r)
		}
	}
	if _, ok := ParseRole("bogus"); ok {
		t.Error("ParseRole accepted an unknown role name")
	}
}
