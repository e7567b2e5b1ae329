package config

import (
	"path/filepath"
	"time"

	"github.com/pincerdbg/pincer/internal/constants"
)

// DefaultConfig returns a config with sensible defaults. The symbol cache
// lives under the pincer config directory unless overridden.
func DefaultConfig(baseDir string) *Config {
	return &Config{
		Version: SchemaVersion,
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Symbols: SymbolsConfig{
			UndecorateNames: true,
			CachePath:       filepath.Join(baseDir, constants.DefaultDir, constants.DefaultSymbolCacheDir),
			ServerURL:       constants.DefaultSymbolServerURL,
			Download: DownloadConfig{
				MaxRetries:     constants.DefaultDownloadMaxRetries,
				InitialBackoff: Duration(constants.DefaultDownloadInitialBackoffMs * time.Millisecond),
			},
		},
	}
}
