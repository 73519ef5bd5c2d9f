package settings

// Settings holds server settings that can be overridden by the user.
type Settings struct {
	// Address the HTTP API listens on
	ListenAddr string `yaml:"listen_addr" json:"listen_addr"`
	// Directory searched for the dataset file
	DataDir string `yaml:"data_dir" json:"data_dir"`
	// Glob pattern for dataset discovery within DataDir
	DataPattern string `yaml:"data_pattern" json:"data_pattern"`
	// Size limit in MB for the rendered-view cache
	CacheSizeLimitMB int `yaml:"cache_size_limit_mb" json:"cache_size_limit_mb"`
	// Idle minutes before a session and its filter state expire
	SessionTTLMinutes int `yaml:"session_ttl_minutes" json:"session_ttl_minutes"`
	// Secret used to sign session tokens. Empty means a random secret
	// is generated at startup, invalidating tokens across restarts.
	TokenSecret string `yaml:"token_secret,omitempty" json:"-"`
}

// CacheSizeBytes converts the configured limit to bytes.
func (s Settings) CacheSizeBytes() int64 {
	return int64(s.CacheSizeLimitMB) * 1024 * 1024
}

// defaultSettings defines the built-in defaults.
var defaultSettings = Settings{
	ListenAddr:        ":8080",
	DataDir:           ".",
	DataPattern:       "", // empty means the loader's full format pattern
	CacheSizeLimitMB:  64,
	SessionTTLMinutes: 60,
}
