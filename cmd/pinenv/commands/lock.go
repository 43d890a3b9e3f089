package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinenv/internal/app"
	"go.trai.ch/pinenv/internal/core/domain"
)

func (c *CLI) newLockCmd() *cobra.Command {
	var opts app.LockOptions

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Install the project from setup.py and write the lock file",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.Lock(cmd.Context(), opts)
		}),
	}

	cmd.Flags().StringVar(&opts.PythonVersion, "python-version", "",
		`Restrict new dependencies to a python version, e.g. "< 3.8"`)
	cmd.Flags().StringVar(&opts.SysPlatform, "platform", "",
		`Restrict new dependencies to a platform, e.g. "win32"`)
	return cmd
}

func (c *CLI) newBumpCmd() *cobra.Command {
	var git bool

	cmd := &cobra.Command{
		Use:   "bump <name> <version>",
		Short: "Pin a dependency of the lock file to another version",
		Args:  cobra.ExactArgs(2),
		RunE: c.projectRunE(func(_ *cobra.Command, p Project, args []string) error {
			return p.Bump(args[0], args[1], git)
		}),
	}

	cmd.Flags().BoolVar(&git, "git", false, "Pin to a source reference: a new revision for a VCS pin, or a full URL")
	return cmd
}

func (c *CLI) newTidyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tidy",
		Short: "Remove dependencies the project no longer needs from the lock file",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			return p.Tidy(cmd.Context(), c.getenv(domain.ActiveEnvVar))
		}),
	}
}
