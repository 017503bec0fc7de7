package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/baaaaaaaka/histpick/internal/config"
	"github.com/baaaaaaaka/histpick/internal/logging"
	"github.com/baaaaaaaka/histpick/internal/shellhist"
)

const envShell = "HISTPICK_SHELL"

var newLogger = logging.FromEnv

// settings is the effective configuration after applying
// flag > environment > config file precedence.
type settings struct {
	dialect     shellhist.Dialect
	historyFile string
	clipboard   bool
	osc52       bool
}

func loadConfig(root *rootOptions) (*config.Store, config.Config, error) {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return store, cfg, nil
}

func resolveSettings(root *rootOptions, cfg config.Config) (settings, error) {
	shell := firstNonEmpty(root.shell, os.Getenv(envShell), cfg.Shell)
	dialect, err := shellhist.ParseDialect(shell)
	if err != nil {
		return settings{}, err
	}

	// shellhist.ResolvePath consults HISTPICK_HISTFILE itself, so the config
	// value only applies when neither the flag nor the env var is set.
	historyFile := strings.TrimSpace(root.historyFile)
	if historyFile == "" && strings.TrimSpace(os.Getenv(shellhist.EnvHistFile)) == "" {
		historyFile = cfg.HistoryFile
	}

	return settings{
		dialect:     dialect,
		historyFile: historyFile,
		clipboard:   cfg.ClipboardEnabled(),
		osc52:       cfg.OSC52Enabled(),
	}, nil
}

// readConfig loads the config for commands that only read it. The config is
// optional, so an unusable location falls back to the defaults.
func readConfig(root *rootOptions, logger *slog.Logger) config.Config {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		logger.Debug("no config location, using defaults", "err", err)
		return config.Config{Version: config.CurrentVersion}
	}
	cfg, err := store.Load()
	if err != nil {
		logger.Warn("ignoring unreadable config", "path", store.Path(), "err", err)
		return config.Config{Version: config.CurrentVersion}
	}
	return cfg
}

func openSource(root *rootOptions, logger *slog.Logger) (*shellhist.Source, settings, error) {
	cfg := readConfig(root, logger)
	st, err := resolveSettings(root, cfg)
	if err != nil {
		return nil, settings{}, err
	}
	src, err := shellhist.Open(st.dialect, st.historyFile)
	if err != nil {
		return nil, settings{}, err
	}
	return src, st, nil
}

func loggerFor(root *rootOptions) (*slog.Logger, func() error) {
	level := slog.LevelWarn
	if root.verbose {
		level = slog.LevelDebug
	}
	return newLogger(level)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
