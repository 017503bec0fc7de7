package proc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("process not found")

// ParentName returns the executable name of the calling process's parent.
func ParentName() (string, error) {
	return Name(os.Getppid())
}

// Name returns the executable name of pid without directory or extension
// and without the leading dash login shells carry.
func Name(pid int) (string, error) {
	if pid <= 0 {
		return "", ErrNotFound
	}
	raw, err := lookupName(pid)
	if err != nil {
		return "", err
	}
	return cleanName(raw), nil
}

func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimPrefix(name, "-")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
