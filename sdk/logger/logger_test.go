package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestParseOutput(t *testing.T) {
	assert.Equal(t, os.Stderr, parseOutput("stderr"))
	assert.Equal(t, os.Stdout, parseOutput("STDOUT"))
	assert.Equal(t, os.Stdout, parseOutput(""))
}

func TestJSONOutputWithUnixTime(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(Options{Level: "DEBUG", Format: "json", TimeFormat: "Unix"}, WithOutput(&buf))

	log.InfoContextf(context.Background(), "reflected %d tables", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "reflected 3 tables", line["msg"])
	assert.IsType(t, float64(0), line["time"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefault(WithOutput(&buf), WithLevel("WARN"), WithFormat("text"))

	log.Info("hidden")
	log.WarnContextf(context.Background(), "shown %s", "warning")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown warning")
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOGTEST_LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	log, err := NewFromEnv("LOGTEST", WithOutput(&buf))
	require.NoError(t, err)

	log.Warn("dropped")
	assert.Empty(t, buf.String())
}
