// Package venv manages project virtualenvs created with `python -m venv`.
package venv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentManager = (*Manager)(nil)

// Manager implements ports.EnvironmentManager.
type Manager struct {
	runner ports.CommandRunner
	logger ports.Logger
	layout domain.PlatformLayout
}

// NewManager creates a Manager for the host platform.
func NewManager(runner ports.CommandRunner, logger ports.Logger) *Manager {
	return NewManagerWithLayout(runner, logger, domain.LayoutFor(runtime.GOOS))
}

// NewManagerWithLayout creates a Manager for an explicit virtualenv layout.
func NewManagerWithLayout(runner ports.CommandRunner, logger ports.Logger, layout domain.PlatformLayout) *Manager {
	return &Manager{
		runner: runner,
		logger: logger,
		layout: layout,
	}
}

// Ensure creates the virtualenv unless it already exists.
func (m *Manager) Ensure(
	ctx context.Context,
	paths domain.Paths,
	info domain.InterpreterInfo,
	settings domain.ProjectSettings,
) error {
	if m.Exists(paths) {
		m.logger.Info("Using existing virtualenv in " + paths.Venv)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(paths.Venv), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrEnvironmentCreationFailed, err.Error()), "path", paths.Venv)
	}

	m.logger.Info("Creating virtualenv in " + paths.Venv)

	args := []string{"-m", "venv"}
	if settings.SystemSitePackages {
		args = append(args, "--system-site-packages")
	}
	args = append(args, paths.Venv)

	if err := m.runner.Run(ctx, domain.Command{Program: info.Executable, Args: args}); err != nil {
		failure := zerr.With(zerr.Wrap(domain.ErrEnvironmentCreationFailed, paths.Venv), "path", paths.Venv)
		return domain.WithFailure(failure, err)
	}
	return nil
}

// Exists reports whether the virtualenv directory is present.
func (m *Manager) Exists(paths domain.Paths) bool {
	st, err := os.Stat(paths.Venv)
	return err == nil && st.IsDir()
}

// Expect fails with domain.ErrMissingEnvironment when the virtualenv is absent.
func (m *Manager) Expect(paths domain.Paths) error {
	if !m.Exists(paths) {
		return zerr.With(zerr.Wrap(domain.ErrMissingEnvironment, paths.Venv), "path", paths.Venv)
	}
	return nil
}

// Clean removes the virtualenv directory tree and nothing else.
func (m *Manager) Clean(paths domain.Paths) error {
	if !m.Exists(paths) {
		return nil
	}

	m.logger.Info("Removing " + paths.Venv)
	if err := os.RemoveAll(paths.Venv); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove virtualenv"), "path", paths.Venv)
	}
	return nil
}

// BinDir returns the directory holding the virtualenv executables.
func (m *Manager) BinDir(paths domain.Paths) string {
	return filepath.Join(paths.Venv, m.layout.BinDir)
}

// ResolveBinary returns the path of an executable inside the virtualenv.
func (m *Manager) ResolveBinary(paths domain.Paths, name string) (string, error) {
	path := filepath.Join(m.BinDir(paths), name+m.layout.ExeSuffix)
	if _, err := os.Stat(path); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrBinaryNotFound, path), "path", path)
	}
	return path, nil
}
