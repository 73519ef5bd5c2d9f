package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GetEffectiveSettings returns the effective settings (defaults
// overlaid with file overrides if any). If anything goes wrong, it
// returns defaults; a broken settings file never prevents startup.
func GetEffectiveSettings() Settings {
	path, err := settingsFilePath()
	if err != nil {
		return defaultSettings
	}
	return LoadFrom(path)
}

// LoadFrom reads the settings file at path and overlays it onto the
// defaults. Unknown keys are ignored; wrongly typed values keep the
// default for that key.
func LoadFrom(path string) Settings {
	settings := defaultSettings
	if _, err := os.Stat(path); err != nil {
		// no file or other stat error -> return defaults
		return settings
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	// Unmarshal into a generic map to detect key presence
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings
	}
	if v, ok := m["listen_addr"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.ListenAddr = vs
		}
	}
	if v, ok := m["data_dir"]; ok {
		if vs, oks := v.(string); oks && vs != "" {
			settings.DataDir = vs
		}
	}
	if v, ok := m["data_pattern"]; ok {
		if vs, oks := v.(string); oks {
			settings.DataPattern = vs
		}
	}
	if v, ok := m["cache_size_limit_mb"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.CacheSizeLimitMB = vi
		}
	}
	if v, ok := m["session_ttl_minutes"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.SessionTTLMinutes = vi
		}
	}
	if v, ok := m["token_secret"]; ok {
		if vs, oks := v.(string); oks {
			settings.TokenSecret = vs
		}
	}
	return settings
}

func settingsFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, "paylens.yml"), nil
}
