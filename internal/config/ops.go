package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/baaaaaaaka/histpick/internal/shellhist"
)

const (
	KeyShell       = "shell"
	KeyHistoryFile = "history-file"
	KeyClipboard   = "clipboard"
	KeyOSC52       = "osc52"
)

var ErrUnknownKey = errors.New("unknown config key")

func Keys() []string {
	return []string{KeyShell, KeyHistoryFile, KeyClipboard, KeyOSC52}
}

// ClipboardEnabled defaults to true.
func (c Config) ClipboardEnabled() bool {
	return c.Clipboard == nil || *c.Clipboard
}

// OSC52Enabled defaults to false.
func (c Config) OSC52Enabled() bool {
	return c.OSC52 != nil && *c.OSC52
}

func (c Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case KeyShell:
		return c.Shell, nil
	case KeyHistoryFile:
		return c.HistoryFile, nil
	case KeyClipboard:
		return onOff(c.ClipboardEnabled()), nil
	case KeyOSC52:
		return onOff(c.OSC52Enabled()), nil
	default:
		return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
}

func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch normalizeKey(key) {
	case KeyShell:
		d, err := shellhist.ParseDialect(value)
		if err != nil {
			return err
		}
		if d == shellhist.Unknown {
			c.Shell = ""
		} else {
			c.Shell = d.String()
		}
	case KeyHistoryFile:
		c.HistoryFile = value
	case KeyClipboard:
		b, err := parseOnOff(value)
		if err != nil {
			return err
		}
		c.Clipboard = &b
	case KeyOSC52:
		b, err := parseOnOff(value)
		if err != nil {
			return err
		}
		c.OSC52 = &b
	default:
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

func (c *Config) Unset(key string) error {
	switch normalizeKey(key) {
	case KeyShell:
		c.Shell = ""
	case KeyHistoryFile:
		c.HistoryFile = ""
	case KeyClipboard:
		c.Clipboard = nil
	case KeyOSC52:
		c.OSC52 = nil
	default:
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "_", "-")
}

func parseOnOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value %q (use on or off)", v)
	}
	return b, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
