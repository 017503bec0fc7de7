package shellhist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const EnvHistFile = "HISTPICK_HISTFILE"

// DefaultPath is where each dialect keeps its history by default.
func DefaultPath(d Dialect) (string, error) {
	if _, err := d.Parser(); err != nil {
		return "", err
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("%w: locate home dir: %w", ErrSourceUnavailable, err)
	}
	switch d {
	case Fish:
		base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME"))
		if base == "" {
			base = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(base, "fish", "fish_history"), nil
	case Zsh:
		return filepath.Join(home, ".zsh_history"), nil
	default:
		return filepath.Join(home, ".bash_history"), nil
	}
}

// ResolvePath picks the history file: explicit override, then
// $HISTPICK_HISTFILE, then the dialect default.
func ResolvePath(d Dialect, override string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return expandPath(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistFile)); v != "" {
		return expandPath(v)
	}
	return DefaultPath(d)
}

func expandPath(p string) (string, error) {
	expanded, err := homedir.Expand(os.ExpandEnv(p))
	if err != nil {
		return "", fmt.Errorf("%w: expand %q: %w", ErrSourceUnavailable, p, err)
	}
	return filepath.Clean(expanded), nil
}
