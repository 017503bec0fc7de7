package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvDebugFile  = "HISTPICK_DEBUG_FILE"
	EnvDebugLevel = "HISTPICK_DEBUG_LEVEL"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

// New builds a slog logger. Timestamps are dropped unless AddTime is set,
// since CLI output is read by people, not collectors.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if !cfg.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

func Discard() *slog.Logger {
	return New(Config{Level: slog.LevelError + 1, Output: io.Discard})
}

// ParseLevel maps a user supplied name to a level, defaulting to fallback.
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// FromEnv returns a logger writing to stderr at level, or to the file named
// by HISTPICK_DEBUG_FILE when set. The returned close func is never nil.
func FromEnv(level slog.Level) (*slog.Logger, func() error) {
	level = ParseLevel(os.Getenv(EnvDebugLevel), level)
	path := strings.TrimSpace(os.Getenv(EnvDebugFile))
	if path == "" {
		return New(Config{Level: level, Output: os.Stderr}), func() error { return nil }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger := New(Config{Level: level, Output: os.Stderr})
		logger.Warn("cannot open debug log file, using stderr", "path", path, "err", err)
		return logger, func() error { return nil }
	}
	return New(Config{Level: level, Output: f, AddTime: true}), f.Close
}
