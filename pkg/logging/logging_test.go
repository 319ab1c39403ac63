package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    zerolog.Level
		wantErr bool
	}{
		{"warn", Options{Level: "warn"}, zerolog.WarnLevel, false},
		{"upper case", Options{Level: "INFO"}, zerolog.InfoLevel, false},
		{"empty defaults to warn", Options{Level: ""}, zerolog.WarnLevel, false},
		{"verbose wins", Options{Level: "error", Verbose: true}, zerolog.DebugLevel, false},
		{"invalid", Options{Level: "loud"}, zerolog.Disabled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Info().Str("query", "safe").Msg("search finished")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search finished", entry["message"])
	assert.Equal(t, "safe", entry["query"])
	assert.Equal(t, "linegrep", entry["component"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "info", Format: "console"})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
