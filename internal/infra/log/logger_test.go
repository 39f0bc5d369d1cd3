package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"gymtrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestBuild_JSONCarriesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "gymtrack"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("meal logged", slog.Int("calories", 640))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "meal logged", record["msg"])
	assert.Equal(t, "gymtrack", record["service"])
	assert.EqualValues(t, 640, record["calories"])
}

func TestBuild_DebugOverridesLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Env.Log.Level = "error"
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
