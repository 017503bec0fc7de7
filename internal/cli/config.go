package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/histpick/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change persistent settings",
	}
	cmd.AddCommand(
		newConfigShowCmd(root),
		newConfigSetCmd(root),
		newConfigUnsetCmd(root),
	)
	return cmd
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the config file path and its values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", store.Path())
			for _, key := range config.Keys() {
				v, err := cfg.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %s\n", key, v)
			}
			return nil
		},
	}
}

func newConfigSetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			return store.Update(func(cfg *config.Config) error {
				return cfg.Set(args[0], args[1])
			})
		},
	}
}

func newConfigUnsetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Reset a config value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			return store.Update(func(cfg *config.Config) error {
				return cfg.Unset(args[0])
			})
		},
	}
}
