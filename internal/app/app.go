// Package app implements the application layer for pinenv.
package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/pinenv/internal/engine/locker"
	"go.trai.ch/pinenv/internal/engine/pip"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	probe        ports.InterpreterProbe
	env          ports.EnvironmentManager
	runner       ports.CommandRunner
	pip          *pip.Pip
	locker       *locker.Locker
	digester     ports.Digester
	openStore    ports.InstallStateStoreOpener
	envFiles     ports.EnvFileLoader
	logger       ports.Logger
	goos         string
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	probe ports.InterpreterProbe,
	env ports.EnvironmentManager,
	runner ports.CommandRunner,
	installer *pip.Pip,
	lck *locker.Locker,
	digester ports.Digester,
	openStore ports.InstallStateStoreOpener,
	envFiles ports.EnvFileLoader,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		probe:        probe,
		env:          env,
		runner:       runner,
		pip:          installer,
		locker:       lck,
		digester:     digester,
		openStore:    openStore,
		envFiles:     envFiles,
		logger:       log,
		goos:         runtime.GOOS,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to timestamp install records.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Options selects the project and interpreter an App operates on.
type Options struct {
	// Project is the project directory. Empty means the working directory.
	Project string
	// ConfigPath is the config file. Empty means the default location.
	ConfigPath string
	// EnvName selects the interpreter from the config. Empty means "default".
	EnvName string
	// Settings are the command line flags, OR-ed with the config settings.
	Settings domain.ProjectSettings
}

// Project is a python project bound to an interpreter and a set of settings.
// Every operation of the command line works on a Project.
type Project struct {
	app      *App
	paths    domain.Paths
	info     domain.InterpreterInfo
	settings domain.ProjectSettings
}

// Open loads the configuration, probes the selected interpreter and resolves
// the project paths.
func (a *App) Open(ctx context.Context, opts Options) (*Project, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	settings := cfg.Merge(opts.Settings)

	python, err := cfg.PythonFor(opts.EnvName, a.goos)
	if err != nil {
		return nil, err
	}

	info, err := a.probe.Probe(ctx, python)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using python " + info.Version + " from " + python)

	dir, err := projectDir(opts.Project)
	if err != nil {
		return nil, err
	}

	paths, err := domain.ResolvePaths(dir, info.Version, settings)
	if err != nil {
		return nil, err
	}

	return &Project{
		app:      a,
		paths:    paths,
		info:     info,
		settings: settings,
	}, nil
}

// Paths returns the resolved project paths.
func (p *Project) Paths() domain.Paths {
	return p.paths
}

// Interpreter returns the probed interpreter.
func (p *Project) Interpreter() domain.InterpreterInfo {
	return p.info
}

// Settings returns the effective settings.
func (p *Project) Settings() domain.ProjectSettings {
	return p.settings
}

func projectDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "path", dir)
	}
	return abs, nil
}
