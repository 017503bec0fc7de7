package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name:   "text format",
			config: Config{Level: slog.LevelInfo, Format: FormatText},
			want:   "level=INFO",
		},
		{
			name:   "json format",
			config: Config{Level: slog.LevelDebug, Format: FormatJSON},
			want:   `"level":"INFO"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.config.Output = &buf
			New(tt.config).Info("loaded history", "count", 3)
			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "time=")
			assert.NotContains(t, buf.String(), `"time"`)
		})
	}
}

func TestNewAddTime(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: slog.LevelInfo, Output: &buf, AddTime: true}).Info("hello")
	assert.Contains(t, buf.String(), "time=")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG", slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning", slog.LevelError))
	assert.Equal(t, slog.LevelError, ParseLevel("error", slog.LevelWarn))
	assert.Equal(t, slog.LevelWarn, ParseLevel("bogus", slog.LevelWarn))
}

func TestFromEnvWritesToDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvDebugFile, path)
	t.Setenv(EnvDebugLevel, "debug")

	logger, closeFn := FromEnv(slog.LevelWarn)
	logger.Debug("detected shell", "dialect", "zsh")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "detected shell")
	assert.Contains(t, string(b), "dialect=zsh")
}

func TestFromEnvDefaultsToStderr(t *testing.T) {
	t.Setenv(EnvDebugFile, "")
	t.Setenv(EnvDebugLevel, "")

	logger, closeFn := FromEnv(slog.LevelWarn)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
