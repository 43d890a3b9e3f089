package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show information about the virtualenv",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "deps",
		Short: "List the installed packages",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.ShowDeps(cmd.Context())
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "outdated",
		Short: "List the installed packages that have a newer release",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.ShowOutdated(cmd.Context())
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "venv-path",
		Short: "Print the virtualenv path",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), p.ShowVenvPath())
			return err
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bin-path",
		Short: "Print the directory holding the virtualenv executables",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			bin, err := p.ShowBinPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bin)
			return err
		}),
	})

	return cmd
}
