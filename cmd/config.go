package cmd

import (
	"fmt"
	"slices"

	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/cristianoliveira/coursedash/internal/config"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	var writeSample bool
	c := &cobra.Command{
		Use:   "config [key]",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML, or a single value when a key is given.

Values come from defaults, then COURSEDASH_* environment variables, then the
config file (` + "`COURSEDASH_CONFIG_PATH`" + ` or $XDG_CONFIG_HOME/coursedash/config.toml).
With --write-sample the defaults are written to the config file instead.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeSample {
				path := config.FilePath()
				if err := config.WriteSample(path); err != nil {
					return err
				}
				colors.Success("wrote", path)
				return nil
			}
			if len(args) == 1 {
				key := args[0]
				if !slices.Contains(config.Keys(), key) {
					return errors.NewConfigurationError("config key", key, "unknown key")
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Get(key, ""))
				return err
			}

			data, err := config.MarshalTOML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			source := "# no config file; defaults and environment only\n"
			if p := config.Path(); p != "" {
				source = "# loaded from " + p + "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), source, string(data))
			return err
		},
	}
	c.Flags().BoolVar(&writeSample, "write-sample", false, "write the default configuration to the config file")
	return c
}
