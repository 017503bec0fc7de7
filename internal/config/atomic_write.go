package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeTemp writes data to a synced temp file next to path and returns its
// name. The caller renames it into place and removes it on failure.
func writeTemp(path string, data []byte, perm os.FileMode, chmod bool) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	fail := func(step string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%s temp file: %w", step, err)
	}

	if chmod {
		if err := f.Chmod(perm); err != nil {
			return fail("chmod", err)
		}
	}
	if _, err := f.Write(data); err != nil {
		return fail("write", err)
	}
	if err := f.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp, nil
}
