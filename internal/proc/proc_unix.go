//go:build !windows

package proc

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

var (
	procRoot = "/proc"
	psPath   = "ps"
)

func lookupName(pid int) (string, error) {
	if b, err := os.ReadFile(fmt.Sprintf("%s/%d/comm", procRoot, pid)); err == nil {
		if name := strings.TrimSpace(string(b)); name != "" {
			return name, nil
		}
	}

	out, err := exec.Command(psPath, "-o", "comm=", "-p", strconv.Itoa(pid)).Output()
	if err != nil {
		return "", fmt.Errorf("%w: ps -p %d: %v", ErrNotFound, pid, err)
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", fmt.Errorf("%w: pid %d", ErrNotFound, pid)
	}
	return name, nil
}
