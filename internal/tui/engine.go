package tui

import (
	"errors"
	"strconv"
)

var ErrEmptyList = errors.New("command list is empty")

// Command is an abstract navigation input. Physical keys are mapped to
// commands by the driver; the engine only sees these values.
type Command int

const (
	CmdNone Command = iota
	CmdDown
	CmdUp
	CmdPageDown
	CmdPageUp
	CmdFirst
	CmdLast
	CmdConfirm
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdDown:
		return "down"
	case CmdUp:
		return "up"
	case CmdPageDown:
		return "page-down"
	case CmdPageUp:
		return "page-up"
	case CmdFirst:
		return "first"
	case CmdLast:
		return "last"
	case CmdConfirm:
		return "confirm"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// Outcome is the controller state after a command has been applied.
type Outcome int

const (
	Running Outcome = iota
	Confirmed
	Quit
)

// Row is one visible history entry.
type Row struct {
	Index       int
	Label       string
	Text        string
	Highlighted bool
}

// Engine owns the cursor over an immutable, oldest-first command list.
// All index arithmetic saturates at the list bounds.
type Engine struct {
	commands []string
	selected int
}

func NewEngine(commands []string) (*Engine, error) {
	if len(commands) == 0 {
		return nil, ErrEmptyList
	}
	return &Engine{
		commands: commands,
		selected: len(commands) - 1,
	}, nil
}

func (e *Engine) Len() int { return len(e.commands) }

func (e *Engine) Selected() int { return e.selected }

// Age is the 1-based distance of index from the newest command.
func (e *Engine) Age(index int) int { return len(e.commands) - index }

// Bounds returns the half-open window [start, end) for a viewport of height
// rows. The window is anchored so the selected row sits at the bottom when
// the list is scrolled.
func (e *Engine) Bounds(height int) (int, int) {
	height = max(1, height)
	start := max(0, e.selected-(height-1))
	end := min(len(e.commands), start+height)
	return start, end
}

func (e *Engine) Window(height int) []Row {
	start, end := e.Bounds(height)
	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, Row{
			Index:       i,
			Label:       strconv.Itoa(e.Age(i)),
			Text:        e.commands[i],
			Highlighted: i == e.selected,
		})
	}
	return rows
}

func (e *Engine) MoveDown() { e.selected = clamp(e.selected+1, 0, len(e.commands)-1) }

func (e *Engine) MoveUp() { e.selected = clamp(e.selected-1, 0, len(e.commands)-1) }

// PageDown keeps one row of overlap with the previous page. Viewports
// shorter than two rows do not move the cursor.
func (e *Engine) PageDown(height int) {
	e.selected = clamp(e.selected+pageStep(height), 0, len(e.commands)-1)
}

func (e *Engine) PageUp(height int) {
	e.selected = clamp(e.selected-pageStep(height), 0, len(e.commands)-1)
}

func (e *Engine) First() { e.selected = 0 }

func (e *Engine) Last() { e.selected = len(e.commands) - 1 }

func (e *Engine) Confirm() string { return e.commands[e.selected] }

// Apply runs one command against the engine and reports whether the session
// should keep going.
func (e *Engine) Apply(cmd Command, height int) Outcome {
	switch cmd {
	case CmdDown:
		e.MoveDown()
	case CmdUp:
		e.MoveUp()
	case CmdPageDown:
		e.PageDown(height)
	case CmdPageUp:
		e.PageUp(height)
	case CmdFirst:
		e.First()
	case CmdLast:
		e.Last()
	case CmdConfirm:
		return Confirmed
	case CmdQuit:
		return Quit
	}
	return Running
}

func pageStep(height int) int {
	return max(0, height-2)
}
