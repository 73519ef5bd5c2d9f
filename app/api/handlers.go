package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"paylens/app"
	"paylens/app/filter"
	"paylens/app/roles"
)

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string          `json:"sessionId"`
	Token     string          `json:"token"`
	Dataset   app.DatasetInfo `json:"dataset"`
}

// CreateSession opens a new dashboard session and returns its token.
func (s *Server) CreateSession(c echo.Context) error {
	session := s.app.CreateSession()
	token, err := s.tokens.Issue(session.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}
	return c.JSON(http.StatusOK, SessionResponse{
		SessionID: session.ID,
		Token:     token,
		Dataset:   s.app.DatasetInfo(),
	})
}

// FilterPayload is the wire form of a filter state. Role names are
// strings so the payload stays readable; unknown roles are rejected.
type FilterPayload struct {
	Include  map[string][]string `json:"include,omitempty"`
	DateFrom string              `json:"dateFrom,omitempty"`
	DateTo   string              `json:"dateTo,omitempty"`
}

// FiltersResponse pairs the session's current state with the options
// the dashboard can offer.
type FiltersResponse struct {
	State   FilterPayload      `json:"state"`
	Options *app.FilterOptions `json:"options"`
}

// GetFilters returns the session's filter state and available options.
func (s *Server) GetFilters(c echo.Context) error {
	session := currentSession(c)
	state, err := s.app.SessionFilters(session.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	return c.JSON(http.StatusOK, FiltersResponse{
		State:   payloadFromState(state),
		Options: s.app.FilterOptions(),
	})
}

// PutFilters replaces the session's filter state.
func (s *Server) PutFilters(c echo.Context) error {
	session := currentSession(c)

	var payload FilterPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed filter payload")
	}
	state, err := stateFromPayload(&payload)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.app.UpdateSessionFilters(session.ID, state); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	return c.JSON(http.StatusOK, FiltersResponse{
		State:   payloadFromState(state),
		Options: s.app.FilterOptions(),
	})
}

// GetDashboard returns the rendered dashboard for the session's current
// filters. The payload comes pre-marshaled from the view cache.
func (s *Server) GetDashboard(c echo.Context) error {
	session := currentSession(c)
	state, err := s.app.SessionFilters(session.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	payload, err := s.app.Dashboard(state)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// GetExport streams the filtered dataset as a CSV download.
func (s *Server) GetExport(c echo.Context) error {
	session := currentSession(c)
	state, err := s.app.SessionFilters(session.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	data, filename, err := s.app.ExportCSV(state)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Reload re-reads the dataset from disk.
func (s *Server) Reload(c echo.Context) error {
	info, err := s.app.Reload()
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, info)
}

// HealthResponse reports server and dataset status.
type HealthResponse struct {
	Status   string          `json:"status"`
	Dataset  app.DatasetInfo `json:"dataset"`
	Sessions int             `json:"sessions"`
	Cache    interface{}     `json:"cache"`
}

// GetHealth returns server status, dataset info and cache statistics.
func (s *Server) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Dataset:  s.app.DatasetInfo(),
		Sessions: s.app.SessionCount(),
		Cache:    s.app.CacheStats(),
	})
}

func payloadFromState(state *filter.State) FilterPayload {
	p := FilterPayload{}
	if len(state.Include) > 0 {
		p.Include = make(map[string][]string, len(state.Include))
		for r, vals := range state.Include {
			p.Include[r.String()] = vals
		}
	}
	if state.DateFrom != nil {
		p.DateFrom = state.DateFrom.Format("2006-01-02")
	}
	if state.DateTo != nil {
		p.DateTo = state.DateTo.Format("2006-01-02")
	}
	return p
}

func stateFromPayload(p *FilterPayload) (*filter.State, error) {
	state := filter.NewState()
	for name, vals := range p.Include {
		r, ok := roles.ParseRole(name)
		if !ok {
			return nil, fmt.Errorf("unknown filter role: %s", name)
		}
		if !r.Categorical() {
			return nil, fmt.Errorf("role %s is not filterable by value", name)
		}
		if state.Include == nil {
			state.Include = make(map[roles.Role][]string)
		}
		state.Include[r] = append([]string(nil), vals...)
	}
	if p.DateFrom != "" {
		d, err := time.Parse("2006-01-02", p.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid dateFrom: %s", p.DateFrom)
		}
		state.DateFrom = &d
	}
	if p.DateTo != "" {
		d, err := time.Parse("2006-01-02", p.DateTo)
		if err != nil {
			return nil, fmt.Errorf("invalid dateTo: %s", p.DateTo)
		}
		state.DateTo = &d
	}
	return state, nil
}
