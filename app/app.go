package app

import (
	"fmt"
	"sort"
	"sync"

	"paylens/app/cache"
	"paylens/app/dataset"
	"paylens/app/dates"
	"paylens/app/roles"
	"paylens/app/settings"
)

// App owns the loaded dataset, everything derived from it, and the
// per-session filter state. Dataset state is replaced atomically on
// reload; readers always see a consistent snapshot.
type App struct {
	settings settings.Settings

	mu          sync.RWMutex
	data        *dataset.LoadResult
	normalized  *dates.Normalized
	roleMap     *roles.RoleMap
	datasetHash string

	sessionsMu sync.RWMutex
	sessions   map[string]*Session

	viewCache *cache.Cache
}

// New creates the application with the given settings. The dataset is
// not loaded yet; call LoadDataset before serving.
func New(cfg settings.Settings) *App {
	return &App{
		settings:  cfg,
		sessions:  make(map[string]*Session),
		viewCache: cache.New(cfg.CacheSizeBytes()),
	}
}

// LoadDataset discovers and loads the dataset from the configured
// directory, resolves column roles, and normalizes dates. On success
// the previous dataset's cached views are invalidated.
func (a *App) LoadDataset() error {
	result, err := dataset.Load(a.settings.DataDir, a.settings.DataPattern)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	hash, err := cache.HashFile(result.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to hash dataset: %w", err)
	}

	roleMap := roles.Resolve(result.Table.Header)
	normalized := dates.Normalize(result.Table, roleMap)

	a.mu.Lock()
	oldHash := a.datasetHash
	a.data = result
	a.normalized = normalized
	a.roleMap = roleMap
	a.datasetHash = hash
	a.mu.Unlock()

	if oldHash != "" && oldHash != hash {
		a.viewCache.InvalidateDataset(oldHash)
	}
	return nil
}

// Reload re-reads the dataset from disk and returns the new dataset
// info. Session filter states survive a reload; selections that no
// longer match any value simply filter to zero rows for that role.
func (a *App) Reload() (*DatasetInfo, error) {
	if err := a.LoadDataset(); err != nil {
		return nil, err
	}
	info := a.DatasetInfo()
	return &info, nil
}

// snapshot returns the current dataset state under a read lock.
func (a *App) snapshot() (*dataset.LoadResult, *dates.Normalized, *roles.RoleMap, string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.data, a.normalized, a.roleMap, a.datasetHash
}

// DatasetInfo describes the loaded dataset for the health endpoint and
// the dashboard header.
type DatasetInfo struct {
	SourcePath  string            `json:"sourcePath"`
	FileType    string            `json:"fileType"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	DroppedRows int               `json:"droppedRows"`
	Synthesized bool              `json:"synthesizedDates"`
	Warning     string            `json:"warning,omitempty"`
	Roles       map[string]string `json:"roles"`
}

// DatasetInfo returns a description of the currently loaded dataset.
func (a *App) DatasetInfo() DatasetInfo {
	data, normalized, roleMap, _ := a.snapshot()
	if data == nil {
		return DatasetInfo{}
	}

	resolved := make(map[string]string)
	for _, r := range roleMap.Resolved() {
		resolved[r.String()] = roleMap.Name(r)
	}

	return DatasetInfo{
		SourcePath:  data.SourcePath,
		FileType:    data.FileType.String(),
		Rows:        normalized.Table.NumRows(),
		Columns:     len(normalized.Table.Header),
		DroppedRows: normalized.Dropped,
		Synthesized: normalized.Synthesized,
		Warning:     data.Warning,
		Roles:       resolved,
	}
}

// RoleOptions lists the selectable values for one resolved categorical
// role, for the dashboard's filter controls.
type RoleOptions struct {
	Role   string   `json:"role"`
	Column string   `json:"column"`
	Values []string `json:"values"`
}

// FilterOptions describes everything the dashboard can filter on:
// distinct values per resolved categorical role plus the date range.
type FilterOptions struct {
	Roles       []RoleOptions `json:"roles"`
	DateMin     string        `json:"dateMin,omitempty"`
	DateMax     string        `json:"dateMax,omitempty"`
	Synthesized bool          `json:"synthesizedDates"`
}

// FilterOptions computes the filter controls from the unfiltered table.
func (a *App) FilterOptions() *FilterOptions {
	_, normalized, roleMap, _ := a.snapshot()
	if normalized == nil {
		return &FilterOptions{}
	}

	opts := &FilterOptions{Synthesized: normalized.Synthesized}
	for _, r := range roles.All {
		if !r.Categorical() {
			continue
		}
		col, ok := roleMap.Column(r)
		if !ok {
			continue
		}
		seen := make(map[string]bool)
		for i := range normalized.Table.Rows {
			if v := normalized.Table.Cell(i, col); v != "" {
				seen[v] = true
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		opts.Roles = append(opts.Roles, RoleOptions{
			Role:   r.String(),
			Column: roleMap.Name(r),
			Values: values,
		})
	}

	if len(normalized.Dates) > 0 {
		opts.DateMin = normalized.MinDate.Format("2006-01-02")
		opts.DateMax = normalized.MaxDate.Format("2006-01-02")
	}
	return opts
}

// CacheStats exposes the view cache statistics for the health endpoint.
func (a *App) CacheStats() cache.Stats {
	return a.viewCache.GetStats()
}
