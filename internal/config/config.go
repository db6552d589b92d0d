// Package config loads and persists the planner's YAML configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the top-level application configuration.
type Config struct {
	// BasePath overrides where planner data lives. Empty means the
	// default (~/.campusplan, or CAMPUSPLAN_HOME).
	BasePath string `yaml:"base_path"`

	// Backend selects the persistence backend: "file" (one JSON file
	// per key) or "sqlite" (a single database file).
	Backend string `yaml:"backend"`

	// DefaultSort is the sort key the list views start with:
	// date, title, or duration.
	DefaultSort string `yaml:"default_sort"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:     BackendFile,
		DefaultSort: "date",
	}
}

// Normalize fills in missing or unknown values with defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		c.Backend = BackendFile
	}
	switch c.DefaultSort {
	case "date", "title", "duration":
	default:
		c.DefaultSort = "date"
	}
	c.BasePath = strings.TrimSpace(c.BasePath)
}

// DefaultPath returns the configuration file location, honoring a
// CAMPUSPLAN_CONFIG override.
func DefaultPath() (string, error) {
	if override, ok := os.LookupEnv("CAMPUSPLAN_CONFIG"); ok {
		if override = strings.TrimSpace(override); override != "" {
			return override, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".campusplan", "config.yaml"), nil
}

// Load reads the configuration from the given YAML path. A missing
// file is first-run: a default config is written (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration to the specified path, creating the
// parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
