package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShellCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Show the detected shell and its history file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, closeLog := loggerFor(root)
			defer func() { _ = closeLog() }()

			src, _, err := openSource(root, logger)
			if err != nil {
				return startupError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shell:   %s\n", src.Dialect)
			fmt.Fprintf(out, "history: %s\n", src.Path)
			return nil
		},
	}
}
