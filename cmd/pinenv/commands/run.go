package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <program> [args...]",
		Short: "Run a program from the virtualenv",
		Long: "Run a program from the virtualenv, from the project directory, " +
			"with the variables of the project .env file set.\n" +
			"Flags after the program name are passed to the program.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, args []string) error {
			return p.Run(cmd.Context(), args)
		}),
	}

	cmd.Flags().SetInterspersed(false)
	return cmd
}
