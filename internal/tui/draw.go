package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	labelWidth    = 5
	columnSpacing = 1
)

var (
	selectedStyle = tcell.StyleDefault.Reverse(true).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

// Frame is everything the driver needs to paint one screen.
type Frame struct {
	Rows     []Row
	Height   int
	Selected int
	Total    int
}

func drawFrame(screen tcell.Screen, frame Frame, opts Options) {
	screen.Clear()
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		screen.Show()
		return
	}

	n := min(frame.Height, len(frame.Rows))
	n = min(n, max(0, h-1))
	for i := 0; i < n; i++ {
		drawRow(screen, i, w, frame.Rows[i])
	}

	drawStatus(screen, h-1, w, statusText(), positionLabel(frame, opts))
	screen.Show()
}

func drawRow(screen tcell.Screen, y, w int, r Row) {
	style := tcell.StyleDefault
	if r.Highlighted {
		style = selectedStyle
	}
	label := padLeft(r.Label, labelWidth)
	line := label + strings.Repeat(" ", columnSpacing) + sanitize(r.Text)
	writeText(screen, 0, y, padRight(truncate(line, w), w), style)
}

func drawStatus(screen tcell.Screen, y, w int, left, right string) {
	style := statusStyle
	writeText(screen, 0, y, padRight("", w), style)

	right = truncate(right, w)
	space := max(0, w-displayWidth(right))
	if space > 0 {
		writeText(screen, 0, y, truncate(left, space), style)
	}
	if right != "" {
		writeText(screen, w-displayWidth(right), y, right, style.Bold(true))
	}
}

func statusText() string {
	return "j/k: move  {/}: page  g/G: oldest/newest  Enter: select  q: quit"
}

func positionLabel(frame Frame, opts Options) string {
	if frame.Total <= 0 {
		return ""
	}
	pos := " " + strconv.Itoa(frame.Total-frame.Selected) + "/" + strconv.Itoa(frame.Total) + " "
	if title := strings.TrimSpace(opts.Title); title != "" {
		pos = " " + title + pos
	}
	return pos
}

// sanitize replaces control characters so a single history entry always
// occupies exactly one screen row.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			buf.WriteRune(ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		buf.WriteRune(ch)
		curWidth += chWidth
	}
	return buf.String()
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func padLeft(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-displayWidth(s)) + s
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
