package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "trace", wantDebug: true, wantInfo: true},
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "info", wantDebug: false, wantInfo: true},
		{level: "warn", wantDebug: false, wantInfo: false},
		{level: "error", wantDebug: false, wantInfo: false},
		{level: "bogus", wantDebug: false, wantInfo: true}, // falls back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.level, Pretty: false, Output: &buf})

			logger.Debug().Msg("debug message")
			logger.Info().Msg("info message")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug message")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info message")))
		})
	}
}

func TestNewWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Pretty: false, Output: &buf}).
		With().Str("component", "symbols").Logger()

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"symbols"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.Pretty)
}
