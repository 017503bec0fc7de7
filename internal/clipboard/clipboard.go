package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

var ErrClipboard = errors.New("clipboard write failed")

// Sink receives the selected command.
type Sink interface {
	Copy(text string) error
}

var (
	writeAll    = atotto.WriteAll
	unsupported = func() bool { return atotto.Unsupported }
)

// System writes to the desktop clipboard (pbcopy, xclip, wl-copy, ...).
type System struct{}

func (System) Copy(text string) error {
	if unsupported() {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboard)
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

func (System) String() string { return "system" }

// OSC52 asks the terminal emulator to set the clipboard, which also works
// over SSH.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) Copy(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("%w: osc52: %w", ErrClipboard, err)
	}
	return nil
}

func (OSC52) String() string { return "osc52" }

// Chain tries each sink in order and stops at the first success.
type Chain []Sink

func (c Chain) Copy(text string) error {
	if len(c) == 0 {
		return fmt.Errorf("%w: clipboard disabled", ErrClipboard)
	}
	var errs []error
	for _, sink := range c {
		err := sink.Copy(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
