package shellhist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrSourceUnavailable = errors.New("history source unavailable")
	ErrUnsupportedFormat = errors.New("unsupported shell history format")
	ErrNoHistory         = errors.New("no history entries found")
)

// Source is a shell history file paired with the dialect used to decode it.
type Source struct {
	Dialect Dialect
	Path    string
}

// Open resolves the dialect and history path. An Unknown dialect triggers
// detection; pathOverride may be empty.
func Open(dialect Dialect, pathOverride string) (*Source, error) {
	if dialect == "" || dialect == Unknown {
		dialect = Detect()
	}
	if dialect == Unknown {
		return nil, fmt.Errorf("%w: unable to detect the current shell", ErrUnsupportedFormat)
	}
	if _, err := dialect.Parser(); err != nil {
		return nil, err
	}
	path, err := ResolvePath(dialect, pathOverride)
	if err != nil {
		return nil, err
	}
	return &Source{Dialect: dialect, Path: path}, nil
}

// Load reads and decodes the whole history file, oldest command first.
func (s *Source) Load() ([]string, error) {
	parser, err := s.Dialect.Parser()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnavailable, s.Path, err)
	}

	commands := parser.Parse(lines)
	for i, cmd := range commands {
		commands[i] = strings.ToValidUTF8(cmd, "�")
	}
	if len(commands) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHistory, s.Path)
	}
	return commands, nil
}

// readLines splits on '\n' without a line length limit.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
