// Package pip drives the pip installer of a project virtualenv.
package pip

import (
	"context"
	"path/filepath"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pip runs pip and setup.py inside a project virtualenv.
// Every command runs from the project directory with the virtualenv activated.
type Pip struct {
	runner ports.CommandRunner
	env    ports.EnvironmentManager
	logger ports.Logger
}

// New creates a new Pip.
func New(runner ports.CommandRunner, env ports.EnvironmentManager, logger ports.Logger) *Pip {
	return &Pip{
		runner: runner,
		env:    env,
		logger: logger,
	}
}

// Upgrade upgrades pip itself. Any failure is reported as domain.ErrPipUpgradeFailed.
func (p *Pip) Upgrade(ctx context.Context, paths domain.Paths) error {
	p.logger.Info("Upgrading pip")
	if err := p.run(ctx, paths, "-m", "pip", "install", "pip", "--upgrade"); err != nil {
		failure := zerr.With(zerr.Wrap(domain.ErrPipUpgradeFailed, paths.Venv), "path", paths.Venv)
		return domain.WithFailure(failure, err)
	}
	return nil
}

// InstallEditable installs the project in editable mode with the extra of the mode.
func (p *Pip) InstallEditable(ctx context.Context, paths domain.Paths, settings domain.ProjectSettings) error {
	p.logger.Info("Installing deps from setup.py using '" + settings.Extra() + "' extra dependencies")
	return p.run(ctx, paths, "-m", "pip", "install", "--editable", editableTarget(settings))
}

// InstallConstrained installs the project in editable mode, constrained by the lock file.
func (p *Pip) InstallConstrained(ctx context.Context, paths domain.Paths, settings domain.ProjectSettings) error {
	p.logger.Info("Installing deps from setup.py constrained by " + filepath.Base(paths.Lock))
	return p.run(ctx, paths,
		"-m", "pip", "install",
		"--constraint", filepath.Base(paths.Lock),
		"--editable", editableTarget(settings),
	)
}

// InstallRequirements installs exactly what the lock file pins.
// The lock is passed by name since the command runs from the project directory.
func (p *Pip) InstallRequirements(ctx context.Context, paths domain.Paths) error {
	p.logger.Info("Installing dependencies from " + paths.Lock)
	return p.run(ctx, paths, "-m", "pip", "install", "--requirement", filepath.Base(paths.Lock))
}

// Develop runs `setup.py develop` without dependencies.
func (p *Pip) Develop(ctx context.Context, paths domain.Paths) error {
	p.logger.Info("Running setup.py develop")
	return p.run(ctx, paths, domain.SetupPyFileName, "develop", "--no-deps")
}

// Freeze returns the packages installed in the virtualenv, in pip's order.
// Editable installs and pkg-resources are excluded.
func (p *Pip) Freeze(ctx context.Context, paths domain.Paths) ([]domain.Dependency, error) {
	cmd, err := p.command(paths, "-m", "pip", "freeze", "--exclude-editable", "--all", "--local")
	if err != nil {
		return nil, err
	}

	out, err := p.runner.Output(ctx, cmd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to freeze dependencies")
	}

	deps, err := domain.ParseFreezeOutput(out)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse pip freeze output")
	}
	return deps, nil
}

// List prints the installed packages, or only the outdated ones.
func (p *Pip) List(ctx context.Context, paths domain.Paths, outdated bool) error {
	args := []string{"-m", "pip", "list"}
	if outdated {
		args = append(args, "--outdated", "--format", "columns")
	}
	return p.run(ctx, paths, args...)
}

func (p *Pip) run(ctx context.Context, paths domain.Paths, args ...string) error {
	cmd, err := p.command(paths, args...)
	if err != nil {
		return err
	}
	return p.runner.Run(ctx, cmd)
}

func (p *Pip) command(paths domain.Paths, args ...string) (domain.Command, error) {
	python, err := p.env.ResolveBinary(paths, "python")
	if err != nil {
		return domain.Command{}, err
	}
	return domain.Command{
		Program: python,
		Args:    args,
		Dir:     paths.Project,
		Env:     domain.VenvEnv(paths.Venv, p.env.BinDir(paths)),
	}, nil
}

func editableTarget(settings domain.ProjectSettings) string {
	return ".[" + settings.Extra() + "]"
}
