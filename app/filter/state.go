package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"paylens/app/roles"
)

// Package filter reduces the loaded table to the rows a session has
// selected. A filter state holds independent inclusion restrictions, one
// per categorical role plus one date interval; restrictions compose by
// logical AND and the result never depends on application order.

// State is the set of user-chosen inclusion restrictions for one session.
// A nil value set (or a set covering every observed value) means the role
// is unrestricted; nil date bounds mean the interval is open on that side.
type State struct {
	// Include maps a categorical role to its permitted values.
	Include map[roles.Role][]string `json:"include,omitempty"`
	// DateFrom/DateTo bound the canonical date, inclusive on both ends.
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
}

// NewState returns the initial, unrestricted filter state every session
// starts with ("all values selected").
func NewState() *State {
	return &State{}
}

// Clone returns a deep copy so session state can be swapped atomically.
func (s *State) Clone() *State {
	if s == nil {
		return NewState()
	}
	c := &State{}
	if s.Include != nil {
		c.Include = make(map[roles.Role][]string, len(s.Include))
		for r, vals := range s.Include {
			c.Include[r] = append([]string(nil), vals...)
		}
	}
	if s.DateFrom != nil {
		d := *s.DateFrom
		c.DateFrom = &d
	}
	if s.DateTo != nil {
		d := *s.DateTo
		c.DateTo = &d
	}
	return c
}

// IsEmpty reports whether the state restricts nothing.
func (s *State) IsEmpty() bool {
	if s == nil {
		return true
	}
	if s.DateFrom != nil || s.DateTo != nil {
		return false
	}
	for _, vals := range s.Include {
		if vals != nil {
			return false
		}
	}
	return true
}

// Key returns a deterministic string identifying this state, used for
// derived-view cache keys. Roles iterate in fixed order and value sets
// are sorted, so equal states always produce equal keys.
func (s *State) Key() string {
	if s == nil {
		return "all"
	}
	var b strings.Builder
	for _, r := range roles.All {
		vals, ok := s.Include[r]
		if !ok || vals == nil {
			continue
		}
		sorted := append([]string(nil), vals...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, "|%s:%s", r, strings.Join(sorted, "\x1f"))
	}
	if s.DateFrom != nil {
		fmt.Fprintf(&b, "|from:%s", s.DateFrom.Format("2006-01-02"))
	}
	if s.DateTo != nil {
		fmt.Fprintf(&b, "|to:%s", s.DateTo.Format("2006-01-02"))
	}
	if b.Len() == 0 {
		return "all"
	}
	return b.String()[1:]
}
