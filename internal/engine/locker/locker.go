// Package locker generates and edits lock files.
package locker

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/pinenv/internal/engine/pip"
	"go.trai.ch/zerr"
)

// Locker drives the lock lifecycle of a project: generate, bump and tidy.
type Locker struct {
	env         ports.EnvironmentManager
	pip         *pip.Pip
	store       ports.LockStore
	logger      ports.Logger
	toolVersion string
}

// New creates a new Locker. toolVersion is recorded in every lock it writes.
func New(
	env ports.EnvironmentManager,
	installer *pip.Pip,
	store ports.LockStore,
	logger ports.Logger,
	toolVersion string,
) *Locker {
	return &Locker{
		env:         env,
		pip:         installer,
		store:       store,
		logger:      logger,
		toolVersion: toolVersion,
	}
}

// Generate installs the project from setup.py into a fresh or existing
// virtualenv, freezes it and writes the lock.
//
// When a lock already exists its markers are carried over and its records for
// other interpreters or platforms are kept. opts only applies to records that
// the previous lock did not have.
func (l *Locker) Generate(
	ctx context.Context,
	paths domain.Paths,
	info domain.InterpreterInfo,
	settings domain.ProjectSettings,
	opts domain.MarkerOptions,
) error {
	if err := expectSetupPy(paths); err != nil {
		return err
	}

	if err := l.env.Ensure(ctx, paths, info, settings); err != nil {
		return err
	}
	if err := l.pip.Upgrade(ctx, paths); err != nil {
		return err
	}
	if err := l.pip.InstallEditable(ctx, paths, settings); err != nil {
		return err
	}

	fresh, err := l.pip.Freeze(ctx, paths)
	if err != nil {
		return err
	}

	previous, err := l.store.Read(paths.Lock)
	switch {
	case errors.Is(err, domain.ErrMissingLock):
		previous = &domain.Lockfile{}
	case err != nil:
		return err
	}

	return l.write(paths.Lock, &domain.Lockfile{
		Metadata:     l.Metadata(info, settings),
		Dependencies: previous.Merge(fresh, opts),
	})
}

// Bump pins one dependency of an existing lock to a new version, or to a
// source reference when useSourceRef is set. The lock is left untouched when no
// record has that name.
func (l *Locker) Bump(lockPath, name, version string, useSourceRef bool, metadata domain.Metadata) error {
	lf, err := l.store.Read(lockPath)
	if err != nil {
		return err
	}

	if err := lf.Bump(name, version, useSourceRef); err != nil {
		return zerr.With(err, "lock", lockPath)
	}
	lf.Metadata = metadata

	l.logger.Info("Bumping " + name + " to " + version)
	return l.write(lockPath, lf)
}

// Tidy rebuilds the virtualenv from scratch, installs the project constrained
// by the current lock and rewrites the lock without the packages that are no
// longer required.
//
// activeEnv is the virtualenv activated in the calling shell, if any. Tidy
// refuses to run while one is active since it deletes the project virtualenv.
// Nothing is deleted unless setup.py and the lock both exist.
func (l *Locker) Tidy(
	ctx context.Context,
	paths domain.Paths,
	info domain.InterpreterInfo,
	settings domain.ProjectSettings,
	activeEnv string,
) error {
	if activeEnv != "" {
		return zerr.With(zerr.Wrap(domain.ErrActiveEnvironmentConflict, activeEnv), "active", activeEnv)
	}
	if err := expectSetupPy(paths); err != nil {
		return err
	}

	old, err := l.store.Read(paths.Lock)
	if err != nil {
		return err
	}

	if err := l.env.Clean(paths); err != nil {
		return err
	}
	if err := l.env.Ensure(ctx, paths, info, settings); err != nil {
		return err
	}
	if err := l.pip.Upgrade(ctx, paths); err != nil {
		return err
	}
	if err := l.pip.InstallConstrained(ctx, paths, settings); err != nil {
		return err
	}

	fresh, err := l.pip.Freeze(ctx, paths)
	if err != nil {
		return err
	}

	return l.write(paths.Lock, &domain.Lockfile{
		Metadata:     l.Metadata(info, settings),
		Dependencies: old.KeepKnown(fresh),
	})
}

// Metadata returns the lock header for the given interpreter and settings.
func (l *Locker) Metadata(info domain.InterpreterInfo, settings domain.ProjectSettings) domain.Metadata {
	return domain.NewMetadata(l.toolVersion, info, settings)
}

func (l *Locker) write(path string, lf *domain.Lockfile) error {
	if err := l.store.Write(path, lf); err != nil {
		return err
	}
	l.logger.Info("Wrote " + path)
	return nil
}

func expectSetupPy(paths domain.Paths) error {
	if _, err := os.Stat(paths.SetupPy); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMissingSetupDescriptor, paths.SetupPy), "path", paths.SetupPy)
	}
	return nil
}
