package app

import (
	"encoding/json"
	"fmt"
	"time"

	"paylens/app/agg"
	"paylens/app/cache"
	"paylens/app/filter"
	"paylens/app/views"
)

// DashboardResponse is the full render-ready dashboard payload for one
// filter state: headline metrics plus every applicable view.
type DashboardResponse struct {
	Dataset DatasetInfo            `json:"dataset"`
	Metrics agg.Metrics            `json:"metrics"`
	Views   map[string]interface{} `json:"views"`
	// FilteredRows echoes how many rows survived the filters, so the
	// interface can show "N of M employees".
	FilteredRows int `json:"filteredRows"`
}

// Dashboard builds the dashboard payload for the given filter state and
// returns it as marshaled JSON. Payloads are cached per dataset version
// and filter key, so identical filter states across sessions render
// once.
func (a *App) Dashboard(state *filter.State) ([]byte, error) {
	_, normalized, roleMap, datasetHash := a.snapshot()
	if normalized == nil {
		return nil, fmt.Errorf("no dataset loaded")
	}

	key := cache.Key(datasetHash, state.Key())
	if payload, ok := a.viewCache.Get(key); ok {
		return payload, nil
	}

	filtered := filter.Apply(normalized, roleMap, state)

	resp := DashboardResponse{
		Dataset: a.DatasetInfo(),
		Metrics: agg.ComputeMetrics(filtered, roleMap),
		Views: views.BuildAll(&views.Context{
			Filtered: filtered,
			Original: normalized,
			Roles:    roleMap,
			Now:      time.Now(),
		}),
		FilteredRows: filtered.Table.NumRows(),
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dashboard: %w", err)
	}

	a.viewCache.Store(key, payload)
	return payload, nil
}
