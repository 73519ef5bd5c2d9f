package roles

import (
	"strings"
)

// Package roles assigns semantic meaning to dataset columns. The dataset
// schema is discovered at runtime, so every downstream computation works
// in terms of roles (Salary, Department, ...) resolved once per load
// rather than hardcoded column names.

// Role is a semantic meaning assigned to at most one physical column.
type Role int

const (
	Salary Role = iota
	Department
	Gender
	Age
	Experience
	Education
	Country
	Date
)

// All lists every role in a fixed order, used when iterating
// deterministically over a RoleMap.
var All = []Role{Salary, Department, Gender, Age, Experience, Education, Country, Date}

// String returns the string representation of Role
func (r Role) String() string {
	switch r {
	case Salary:
		return "salary"
	case Department:
		return "department"
	case Gender:
		return "gender"
	case Age:
		return "age"
	case Experience:
		return "experience"
	case Education:
		return "education"
	case Country:
		return "country"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// Categorical reports whether the role is filtered by value inclusion
// sets. Salary, Age and Experience are continuous; Date is an interval.
func (r Role) Categorical() bool {
	switch r {
	case Department, Gender, Education, Country:
		return true
	default:
		return false
	}
}

// keywords maps each role to the lowercase substrings that identify its
// column. First keyword list match against the header, in header order,
// wins; lookup stops at the first matching column.
var keywords = map[Role][]string{
	Salary:     {"salary"},
	Department: {"department", "dept"},
	Gender:     {"gender", "sex"},
	Age:        {"age"},
	Experience: {"experience", "years"},
	Education:  {"education", "degree"},
	Country:    {"country", "location", "nation"},
	Date:       {"date"},
}

// RoleMap maps each resolved role to the index and name of its column.
// Unresolved roles are simply absent. Built once per dataset load and
// never mutated afterwards.
type RoleMap struct {
	columns map[Role]int
	names   map[Role]string
}

// Resolve builds a RoleMap from the table header. It is a pure function
// of the column names: values are never inspected, and repeated calls on
// the same header yield identical maps.
func Resolve(header []string) *RoleMap {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rm := &RoleMap{
		columns: make(map[Role]int),
		names:   make(map[Role]string),
	}

	for _, role := range All {
		idx := firstMatch(lower, keywords[role])
		if idx >= 0 {
			rm.columns[role] = idx
			rm.names[role] = header[idx]
		}
	}

	return rm
}

// firstMatch scans columns in header order and returns the first whose
// lowercased name contains any of the keywords, or -1.
func firstMatch(lowerHeader []string, keys []string) int {
	for i, h := range lowerHeader {
		for _, k := range keys {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

// Column returns the column index for a role and whether it resolved.
func (rm *RoleMap) Column(r Role) (int, bool) {
	if rm == nil {
		return -1, false
	}
	idx, ok := rm.columns[r]
	return idx, ok
}

// Name returns the original column name for a role, or "" if unresolved.
func (rm *RoleMap) Name(r Role) string {
	if rm == nil {
		return ""
	}
	return rm.names[r]
}

// Has reports whether every given role resolved to a column.
func (rm *RoleMap) Has(rs ...Role) bool {
	if rm == nil {
		return false
	}
	for _, r := range rs {
		if _, ok := rm.columns[r]; !ok {
			return false
		}
	}
	return true
}

// Resolved returns the resolved roles in fixed role order.
func (rm *RoleMap) Resolved() []Role {
	if rm == nil {
		return nil
	}
	out := make([]Role, 0, len(rm.columns))
	for _, r := range All {
		if _, ok := rm.columns[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ParseRole converts a role name back to a Role, for API payloads.
func ParseRole(s string) (Role, bool) {
	for _, r := range All {
		if r.String() == strings.ToLower(strings.TrimSpace(s)) {
			return r, true
		}
	}
	return 0, false
}
