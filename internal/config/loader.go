// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pincerdbg/pincer/internal/constants"
)

// Loader handles loading and saving the pincer configuration file.
type Loader struct {
	baseDir string
}

// NewLoader creates a new config loader. The base directory is resolved in
// this order:
//  1. PINCER_CONFIG environment variable.
//  2. User home directory.
//  3. /tmp/pincer-fallback (environments without a home dir).
//
// The loader never fails to construct; when no config file exists, Load
// returns defaults with env var overrides applied.
func NewLoader() *Loader {
	if baseDir := os.Getenv("PINCER_CONFIG"); baseDir != "" {
		return &Loader{baseDir: baseDir}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		return &Loader{baseDir: homeDir}
	}

	return &Loader{baseDir: "/tmp/pincer-fallback"}
}

// ConfigPath returns the path to the config file.
func (l *Loader) ConfigPath() string {
	return filepath.Join(l.baseDir, constants.DefaultDir, constants.ConfigFile)
}

// Load loads the configuration, returning defaults if the file doesn't
// exist. Environment variable overrides are applied last.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig(l.baseDir)

	data, err := os.ReadFile(l.ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the configuration to disk, creating the config directory if
// needed.
func (l *Loader) Save(cfg *Config) error {
	path := l.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies PINCER_* environment variables over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PINCER_SYMBOL_CACHE"); v != "" {
		cfg.Symbols.CachePath = v
	}
	if v := os.Getenv("PINCER_SYMBOL_SERVER"); v != "" {
		cfg.Symbols.ServerURL = v
	}
	if v := os.Getenv("PINCER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
