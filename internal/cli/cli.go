package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

type rootOptions struct {
	configPath  string
	shell       string
	historyFile string
	verbose     bool
}

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	pick := &pickOptions{}

	cmd := &cobra.Command{
		Use:           "histpick",
		Short:         "Browse shell history and pick a command",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPick(cmd, opts, pick)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Override config file path (default: OS user config dir)")
	cmd.PersistentFlags().StringVar(&opts.shell, "shell", "", "History format: bash, zsh or fish (default: detect)")
	cmd.PersistentFlags().StringVar(&opts.historyFile, "history-file", "", "Override history file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.Flags().BoolVar(&pick.noClipboard, "no-clipboard", false, "Do not copy the selected command")
	cmd.Flags().BoolVar(&pick.osc52, "osc52", false, "Fall back to an OSC 52 terminal escape when the system clipboard fails")
	cmd.Flags().BoolVar(&pick.print, "print", false, "Write only the selected command to stdout")

	cmd.AddCommand(
		newListCmd(opts),
		newShellCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
