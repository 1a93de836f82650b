// Package cmd wires the coursedash command line.
package cmd

import (
	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/cristianoliveira/coursedash/internal/config"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coursedash",
		Short: "Admin and instructor dashboards for the terminal.",
		Long: `Admin and instructor dashboards for the terminal.

Each dashboard is a full-screen shell: a sidebar of pages on the left and the
selected page on the right. Data comes from a built-in sample campus and is
never written anywhere.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			colors.SetDebug(config.GetBool("debug", false))
			colors.SetQuiet(config.GetBool("quiet", false))
			return logging.InitGlobal()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.ShutdownGlobal()
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.AddCommand(
		newShellCmd(adminShell),
		newShellCmd(instructorShell),
		newConfigCmd(),
		newVersionCmd(),
	)
	root.SetHelpCommand(newHelpCmd())
	return root
}

// Execute runs the command line and reports failures on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		errors.Report(errors.NewDefaultCLIHandler(), err)
	}
	return err
}
