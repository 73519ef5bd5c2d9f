package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"paylens/app/filter"
)

// Session is one dashboard user's filter state. Sessions are held only
// in memory; a restart forgets them all.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time
	Filters   *filter.State
}

// ErrSessionNotFound is returned when a session ID is unknown or has
// expired.
var ErrSessionNotFound = fmt.Errorf("session not found")

// CreateSession registers a new session with an unrestricted filter
// state. Expired sessions are swept opportunistically on create.
func (a *App) CreateSession() *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
		Filters:   filter.NewState(),
	}

	a.sessionsMu.Lock()
	a.sweepExpiredLocked(now)
	a.sessions[s.ID] = s
	a.sessionsMu.Unlock()
	return s
}

// Session looks up a live session and refreshes its idle timer.
func (a *App) Session(id string) (*Session, error) {
	now := time.Now()

	a.sessionsMu.Lock()
	defer a.sessionsMu.Unlock()

	s, ok := a.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if a.expired(s, now) {
		delete(a.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.LastSeen = now
	return s, nil
}

// SessionFilters returns a copy of the session's current filter state.
func (a *App) SessionFilters(id string) (*filter.State, error) {
	a.sessionsMu.RLock()
	s, ok := a.sessions[id]
	a.sessionsMu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Filters.Clone(), nil
}

// UpdateSessionFilters replaces the session's filter state atomically.
// The incoming state is cloned, so the caller's copy stays independent.
func (a *App) UpdateSessionFilters(id string, state *filter.State) error {
	a.sessionsMu.Lock()
	defer a.sessionsMu.Unlock()

	s, ok := a.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Filters = state.Clone()
	s.LastSeen = time.Now()
	return nil
}

// SessionCount returns the number of live sessions.
func (a *App) SessionCount() int {
	a.sessionsMu.RLock()
	defer a.sessionsMu.RUnlock()
	return len(a.sessions)
}

func (a *App) expired(s *Session, now time.Time) bool {
	ttl := time.Duration(a.settings.SessionTTLMinutes) * time.Minute
	return ttl > 0 && now.Sub(s.LastSeen) > ttl
}

// sweepExpiredLocked removes expired sessions. Caller holds sessionsMu.
func (a *App) sweepExpiredLocked(now time.Time) {
	for id, s := range a.sessions {
		if a.expired(s, now) {
			delete(a.sessions, id)
		}
	}
}
