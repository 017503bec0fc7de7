package tui

import (
	"context"
)

type Selection struct {
	Command string
	Index   int
	Age     int
}

type Options struct {
	Commands []string
	// Title is shown next to the position counter, usually the shell name.
	Title string
}

// SelectCommand shows the history picker and blocks until the user confirms
// an entry or quits. Quitting returns a nil selection and a nil error.
func SelectCommand(ctx context.Context, opts Options) (*Selection, error) {
	engine, err := NewEngine(opts.Commands)
	if err != nil {
		return nil, err
	}

	term, err := openTerminal()
	if err != nil {
		return nil, err
	}
	defer term.Close()

	return runSession(ctx, engine, newScreenDriver(term.screen, opts))
}

func runSession(ctx context.Context, engine *Engine, driver Driver) (*Selection, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		height := driver.Height()
		driver.Paint(Frame{
			Rows:     engine.Window(height),
			Height:   height,
			Selected: engine.Selected(),
			Total:    engine.Len(),
		})

		cmd, err := driver.Next()
		if err != nil {
			return nil, err
		}

		switch engine.Apply(cmd, height) {
		case Confirmed:
			idx := engine.Selected()
			return &Selection{
				Command: engine.Confirm(),
				Index:   idx,
				Age:     engine.Age(idx),
			}, nil
		case Quit:
			return nil, nil
		}
	}
}
