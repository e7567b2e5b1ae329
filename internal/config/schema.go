package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the configuration schema version.
const SchemaVersion = "1"

// Config represents the ~/.pincer/config.yaml config file.
type Config struct {
	Version string        `yaml:"version"`
	Log     LogConfig     `yaml:"log"`
	Symbols SymbolsConfig `yaml:"symbols"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// SymbolsConfig contains settings for the symbol resolution subsystem.
type SymbolsConfig struct {
	// UndecorateNames controls whether resolved symbolic names are shown in
	// demangled form. Enumeration always carries both forms regardless.
	UndecorateNames bool `yaml:"undecorate_names"`

	// CachePath is the local symbol cache directory used when building the
	// symbol-server search path.
	CachePath string `yaml:"cache_path" env:"PINCER_SYMBOL_CACHE"`

	// ServerURL is the symbol server used by bulk downloads when the caller
	// does not supply one.
	ServerURL string `yaml:"server_url" env:"PINCER_SYMBOL_SERVER"`

	// Download tunes per-module retry behavior during bulk symbol reloads.
	Download DownloadConfig `yaml:"download,omitempty"`
}

// DownloadConfig contains retry knobs for symbol-server fetches.
type DownloadConfig struct {
	MaxRetries     int      `yaml:"max_retries,omitempty"`
	InitialBackoff Duration `yaml:"initial_backoff,omitempty"`
	MaxBackoff     Duration `yaml:"max_backoff,omitempty"`
}

// Duration wraps time.Duration so yaml values can be written as "250ms" or
// "1s" instead of raw nanosecond counts.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"250ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
