package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type listEntry struct {
	Age     int    `json:"age"`
	Index   int    `json:"index"`
	Command string `json:"command"`
}

func newListCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print loaded history with age labels, newest last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}
			logger, closeLog := loggerFor(root)
			defer func() { _ = closeLog() }()

			src, _, err := openSource(root, logger)
			if err != nil {
				return startupError(err)
			}
			commands, err := src.Load()
			if err != nil {
				return err
			}

			start := 0
			if limit > 0 && limit < len(commands) {
				start = len(commands) - limit
			}
			entries := make([]listEntry, 0, len(commands)-start)
			for i := start; i < len(commands); i++ {
				entries = append(entries, listEntry{
					Age:     len(commands) - i,
					Index:   i,
					Command: commands[i],
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%5d %s\n", e.Age, e.Command)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Only print the newest N entries (0 for all)")
	return cmd
}
