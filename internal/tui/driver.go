package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var ErrRenderBackend = errors.New("terminal backend failure")

var errEventsClosed = errors.New("terminal event stream closed")

var newScreen = tcell.NewScreen

// Driver paints frames and turns raw input into commands.
type Driver interface {
	// Height is the number of rows available for history entries.
	Height() int
	Paint(frame Frame)
	// Next blocks until the user produces an input.
	Next() (Command, error)
}

// terminal is the exclusively owned raw-mode screen. Close is idempotent and
// must run on every exit path.
type terminal struct {
	screen tcell.Screen
	once   sync.Once
}

func openTerminal() (*terminal, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: create screen: %v", ErrRenderBackend, err)
	}
	t := &terminal{screen: screen}
	if err := screen.Init(); err != nil {
		t.Close()
		return nil, fmt.Errorf("%w: init screen: %v", ErrRenderBackend, err)
	}
	return t, nil
}

func (t *terminal) Close() {
	t.once.Do(func() {
		// Fini on a half-initialised screen may panic inside tcell.
		defer func() { _ = recover() }()
		t.screen.Fini()
	})
}

type screenDriver struct {
	screen tcell.Screen
	opts   Options
}

func newScreenDriver(screen tcell.Screen, opts Options) *screenDriver {
	return &screenDriver{screen: screen, opts: opts}
}

func (d *screenDriver) Height() int {
	_, h := d.screen.Size()
	return max(1, h-1)
}

func (d *screenDriver) Paint(frame Frame) {
	drawFrame(d.screen, frame, d.opts)
}

func (d *screenDriver) Next() (Command, error) {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return CmdNone, fmt.Errorf("%w: %v", ErrRenderBackend, errEventsClosed)
		case *tcell.EventResize:
			d.screen.Sync()
			return CmdNone, nil
		case *tcell.EventKey:
			return commandForKey(ev), nil
		}
	}
}
