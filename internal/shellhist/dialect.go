package shellhist

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect identifies a shell's history file format.
type Dialect string

const (
	Unknown Dialect = "unknown"
	Bash    Dialect = "bash"
	Zsh     Dialect = "zsh"
	Fish    Dialect = "fish"
)

// Parser turns raw history file lines into commands, oldest first.
type Parser interface {
	Parse(lines []string) []string
}

var parsers = map[Dialect]Parser{
	Bash: bashParser{},
	Zsh:  zshParser{},
	Fish: fishParser{},
}

func (d Dialect) String() string { return string(d) }

func (d Dialect) Parser() (Parser, error) {
	p, ok := parsers[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(d))
	}
	return p, nil
}

// ParseDialect accepts a shell name as typed by a user or stored in config.
// An empty name yields Unknown so callers can fall back to detection.
func ParseDialect(name string) (Dialect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Unknown, nil
	}
	d := Dialect(name)
	if _, ok := parsers[d]; !ok {
		return Unknown, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, name, strings.Join(Supported(), ", "))
	}
	return d, nil
}

func Supported() []string {
	out := make([]string, 0, len(parsers))
	for d := range parsers {
		out = append(out, string(d))
	}
	sort.Strings(out)
	return out
}

// dialectFromName matches a process or shell name by substring. Fish is
// checked first, then bash, then zsh.
func dialectFromName(name string) Dialect {
	name = strings.ToLower(name)
	switch {
	case name == "":
		return Unknown
	case strings.Contains(name, "fish"):
		return Fish
	case strings.Contains(name, "bash"):
		return Bash
	case strings.Contains(name, "zsh"):
		return Zsh
	default:
		return Unknown
	}
}
