package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinenv/internal/app"
)

// projectRunE opens the project, then hands it to fn.
func (c *CLI) projectRunE(fn func(cmd *cobra.Command, p Project, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := c.open(cmd)
		if err != nil {
			return err
		}
		return fn(cmd, p, args)
	}
}

func (c *CLI) newInitCmd() *cobra.Command {
	var opts app.InitOptions

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Generate a setup.py skeleton",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.projectRunE(func(_ *cobra.Command, p Project, args []string) error {
			if len(args) == 1 {
				opts.Name = args[0]
			}
			return p.Init(opts)
		}),
	}

	cmd.Flags().StringVar(&opts.Version, "version", "", "Initial project version (default 0.1.0)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Project author")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Project description")
	return cmd
}

func (c *CLI) newInstallCmd() *cobra.Command {
	var opts app.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the locked dependencies into the virtualenv",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.Install(cmd.Context(), opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.NoDevelop, "no-develop", false, "Do not run setup.py develop")
	return cmd
}

func (c *CLI) newDevelopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "develop",
		Short: "Run setup.py develop in the virtualenv",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.Develop(cmd.Context())
		}),
	}
}

func (c *CLI) newUpgradePipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade-pip",
		Short: "Upgrade pip in the virtualenv",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.UpgradePip(cmd.Context())
		}),
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtualenv",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(_ *cobra.Command, p Project, _ []string) error {
			return p.Clean()
		}),
	}
}
