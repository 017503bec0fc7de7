package shellhist

import "strings"

type bashParser struct{}

// Parse keeps lines verbatim, dropping blanks and the "#<epoch>" markers bash
// writes when HISTTIMEFORMAT is set.
func (bashParser) Parse(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || isBashTimestamp(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func isBashTimestamp(line string) bool {
	if len(line) < 2 || line[0] != '#' {
		return false
	}
	for _, c := range line[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

type zshParser struct{}

// Parse handles both plain and EXTENDED_HISTORY (": <start>:<elapsed>;<cmd>")
// lines. A trailing backslash continues the command on the next line.
func (zshParser) Parse(lines []string) []string {
	out := make([]string, 0, len(lines))
	var pending strings.Builder
	continuing := false
	for _, raw := range lines {
		line := unmetafy(raw)
		if !continuing {
			line = stripZshExtended(line)
		}
		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			pending.WriteByte('\n')
			continuing = true
			continue
		}
		pending.WriteString(line)
		cmd := pending.String()
		pending.Reset()
		continuing = false
		if strings.TrimSpace(cmd) == "" {
			continue
		}
		out = append(out, cmd)
	}
	if continuing {
		if cmd := strings.TrimSuffix(pending.String(), "\n"); strings.TrimSpace(cmd) != "" {
			out = append(out, cmd)
		}
	}
	return out
}

func stripZshExtended(line string) string {
	if !strings.HasPrefix(line, ": ") {
		return line
	}
	meta, cmd, ok := strings.Cut(line, ";")
	if !ok || !isZshMeta(meta[2:]) {
		return line
	}
	return cmd
}

// isZshMeta reports whether s looks like "<start>:<elapsed>".
func isZshMeta(s string) bool {
	start, elapsed, ok := strings.Cut(s, ":")
	return ok && isDigits(strings.TrimSpace(start)) && isDigits(elapsed)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

const zshMeta = 0x83

// unmetafy reverses zsh's history encoding, where bytes in the meta range are
// written as 0x83 followed by the byte XOR 0x20.
func unmetafy(s string) string {
	if strings.IndexByte(s, zshMeta) < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == zshMeta && i+1 < len(s) {
			i++
			b = append(b, s[i]^0x20)
			continue
		}
		b = append(b, s[i])
	}
	return string(b)
}

type fishParser struct{}

const fishCmdPrefix = "- cmd:"

// Parse extracts the "- cmd:" entries of fish's YAML-like history file.
func (fishParser) Parse(lines []string) []string {
	out := make([]string, 0, len(lines)/2)
	for _, line := range lines {
		if !strings.HasPrefix(line, fishCmdPrefix) {
			continue
		}
		cmd := strings.TrimSpace(strings.TrimPrefix(line, fishCmdPrefix))
		if cmd == "" {
			continue
		}
		out = append(out, fishUnescape(cmd))
	}
	return out
}

// fishUnescape decodes the two escapes fish writes into history entries:
// "\\" for a backslash and "\n" for a newline. Other sequences are kept.
func fishUnescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
