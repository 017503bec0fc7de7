package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/histpick/internal/clipboard"
	"github.com/baaaaaaaka/histpick/internal/shellhist"
	"github.com/baaaaaaaka/histpick/internal/tui"
)

var (
	selectCommand = tui.SelectCommand
	newClipboard  = defaultClipboard
)

type pickOptions struct {
	noClipboard bool
	osc52       bool
	print       bool
}

func runPick(cmd *cobra.Command, root *rootOptions, opts *pickOptions) error {
	logger, closeLog := loggerFor(root)
	defer func() { _ = closeLog() }()

	src, st, err := openSource(root, logger)
	if err != nil {
		return startupError(err)
	}
	logger.Debug("history source", "dialect", src.Dialect.String(), "path", src.Path)

	commands, err := src.Load()
	if err != nil {
		return startupError(err)
	}
	logger.Debug("history loaded", "entries", len(commands))

	selection, err := selectCommand(cmd.Context(), tui.Options{
		Commands: commands,
		Title:    src.Dialect.String(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if selection == nil {
		// --print keeps stdout empty so command substitution yields nothing.
		if opts.print {
			fmt.Fprintln(cmd.ErrOrStderr(), "No command selected")
		} else {
			fmt.Fprintln(out, "No command selected")
		}
		return nil
	}
	logger.Debug("command selected", "index", selection.Index, "age", selection.Age)

	if opts.print {
		fmt.Fprintln(out, selection.Command)
		return nil
	}

	if opts.noClipboard || !st.clipboard {
		fmt.Fprintf(out, "Selected command: %s\n", selection.Command)
		return nil
	}

	sink := newClipboard(opts.osc52 || st.osc52, cmd.ErrOrStderr())
	if err := sink.Copy(selection.Command); err != nil {
		logger.Warn("could not copy to clipboard", "err", err)
		fmt.Fprintf(out, "Selected command: %s\n", selection.Command)
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: clipboard unavailable, command was not copied")
		return nil
	}
	fmt.Fprintf(out, "Copied command: %s\n", selection.Command)
	return nil
}

func defaultClipboard(osc52 bool, out io.Writer) clipboard.Sink {
	chain := clipboard.Chain{clipboard.System{}}
	if osc52 {
		chain = append(chain, clipboard.OSC52{Out: out})
	}
	return chain
}

func startupError(err error) error {
	if errors.Is(err, shellhist.ErrUnsupportedFormat) {
		return fmt.Errorf("%w (use --shell bash|zsh|fish)", err)
	}
	return err
}
