// Package constants defines shared configuration constants.
package constants

var (
	ConfigFile = "config.yaml"

	DefaultDir = ".pincer"

	// DefaultSymbolCacheDir is the symbol download cache, relative to the
	// pincer config directory.
	DefaultSymbolCacheDir = "symcache"

	// DefaultSymbolServerURL is Microsoft's public symbol server.
	DefaultSymbolServerURL = "https://msdl.microsoft.com/download/symbols"

	// DefaultSymbolMask requests every symbol of a module from the provider.
	DefaultSymbolMask = "*"
)

const (
	// DefaultDownloadMaxRetries bounds per-module symbol reload attempts
	// during a bulk download.
	DefaultDownloadMaxRetries = 3

	// DefaultDownloadInitialBackoffMs is the base backoff between reload
	// attempts, in milliseconds.
	DefaultDownloadInitialBackoffMs = 250
)
