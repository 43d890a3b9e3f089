// Package commands implements the CLI commands for pinenv.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/pinenv/internal/app"
	"go.trai.ch/pinenv/internal/build"
	"go.trai.ch/pinenv/internal/core/domain"
)

// CLI represents the command line interface for pinenv.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	logConfig LogConfigurer
	color     bool
	getenv    func(string) string
	flags     globalFlags
}

// Application opens the project a command operates on.
type Application interface {
	Open(ctx context.Context, opts app.Options) (Project, error)
}

// Project is the set of operations the commands run against an opened project.
type Project interface {
	Paths() domain.Paths
	Init(opts app.InitOptions) error
	Install(ctx context.Context, opts app.InstallOptions) error
	Lock(ctx context.Context, opts app.LockOptions) error
	Bump(name, version string, git bool) error
	Tidy(ctx context.Context, activeEnv string) error
	Develop(ctx context.Context) error
	UpgradePip(ctx context.Context) error
	Run(ctx context.Context, args []string) error
	ShowDeps(ctx context.Context) error
	ShowOutdated(ctx context.Context) error
	ShowVenvPath() string
	ShowBinPath() (string, error)
	Clean() error
	Status() (domain.Status, error)
}

// LogConfigurer is implemented by loggers whose output format can be changed
// from the command line.
type LogConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

type globalFlags struct {
	project            string
	config             string
	env                string
	production         bool
	systemSitePackages bool
	json               bool
	verbose            bool
}

// Adapt exposes an *app.App as an Application.
func Adapt(a *app.App) Application {
	return appAdapter{app: a}
}

type appAdapter struct {
	app *app.App
}

func (a appAdapter) Open(ctx context.Context, opts app.Options) (Project, error) {
	p, err := a.app.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pinenv",
		Short:         "Per-project python virtualenvs with locked dependencies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		getenv:  os.Getenv,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.flags.project, "project", "p", "", "Project directory (default: working directory)")
	pf.StringVar(&c.flags.config, "config", "", "Config file (default: user config directory)")
	pf.StringVar(&c.flags.env, "env", domain.DefaultEnvName, "Python environment from the config file")
	pf.BoolVar(&c.flags.production, "production", false, "Use the prod extra and production.lock")
	pf.BoolVar(&c.flags.systemSitePackages, "system-site-packages", false,
		"Give the virtualenv access to the system site-packages")
	pf.BoolVar(&c.flags.json, "json", false, "Log in JSON")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Log debug output")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logConfig != nil {
			c.logConfig.SetJSON(c.flags.json)
			c.logConfig.SetVerbose(c.flags.verbose)
		}
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newBumpCmd())
	rootCmd.AddCommand(c.newTidyCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newDevelopCmd())
	rootCmd.AddCommand(c.newUpgradePipCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogConfig lets the --json and --verbose flags reconfigure the logger.
func (c *CLI) WithLogConfig(lc LogConfigurer) *CLI {
	c.logConfig = lc
	return c
}

// WithColor enables colored command output.
func (c *CLI) WithColor(enable bool) *CLI {
	c.color = enable
	return c
}

// WithGetenv replaces the environment lookup. Used for testing.
func (c *CLI) WithGetenv(getenv func(string) string) *CLI {
	c.getenv = getenv
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) open(cmd *cobra.Command) (Project, error) {
	return c.app.Open(cmd.Context(), app.Options{
		Project:    c.flags.project,
		ConfigPath: c.flags.config,
		EnvName:    c.flags.env,
		Settings: domain.ProjectSettings{
			Production:         c.flags.production,
			SystemSitePackages: c.flags.systemSitePackages,
		},
	})
}
