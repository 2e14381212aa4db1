package observability

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		" Panic ": zerolog.PanicLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LoggingConfig{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("hidden")
	WithQueryContext(log, "succ_c", "icit_c").Warn().Msg("no producers")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"from":"succ_c"`)
	assert.Contains(t, out, `"to":"icit_c"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LoggingConfig{Level: "debug", Format: "console"}, &buf)
	log.Debug().Int("paths", 3).Msg("progress")

	assert.Contains(t, buf.String(), "progress")
	assert.Contains(t, buf.String(), "paths=3")
}

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()
	assert.Equal(t, "stderr", cfg.Output)
	assert.Equal(t, "info", cfg.Level)
}
