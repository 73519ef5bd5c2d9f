package cache

import (
	"time"
)

// Entry is one cached dashboard payload. Payload holds the marshaled
// response bytes so entry size is exact, not estimated.
type Entry struct {
	Payload    []byte
	Size       int64
	AccessTime int64
	CreateTime time.Time
}

// Stats contains cache statistics exposed on the health endpoint.
type Stats struct {
	TotalEntries int     `json:"totalEntries"`
	TotalSize    int64   `json:"totalSize"`
	MaxSize      int64   `json:"maxSize"`
	UsagePercent float64 `json:"usagePercent"`
	Hits         int64   `json:"hits"`
	Misses       int64   `json:"misses"`
	HitRate      float64 `json:"hitRate"`
}

// DefaultMaxSize is the default cache size limit (64MB)
const DefaultMaxSize = 64 * 1024 * 1024
