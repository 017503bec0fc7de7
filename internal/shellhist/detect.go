package shellhist

import (
	"os"
	"path/filepath"

	"github.com/baaaaaaaka/histpick/internal/proc"
)

var parentName = proc.ParentName

// Detect guesses the dialect of the shell that launched the process. The
// parent process wins; $SHELL is consulted only when the parent is not a
// recognised shell (for example when run through a wrapper script).
func Detect() Dialect {
	if name, err := parentName(); err == nil {
		if d := dialectFromName(name); d != Unknown {
			return d
		}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return dialectFromName(filepath.Base(shell))
	}
	return Unknown
}
