package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Paths holds every location pinenv reads or writes for a project.
type Paths struct {
	Project string
	Venv    string
	Lock    string
	SetupPy string
}

// EnvName returns the virtualenv directory name, relative to .venv, for the given
// interpreter version and settings, e.g. "dev/3.9.7".
func EnvName(pythonVersion string, settings ProjectSettings) string {
	return filepath.Join(string(settings.Mode()), pythonVersion)
}

// ResolvePaths computes the project paths. It never touches the filesystem.
//
// The virtualenv lives in <project>/.venv/<mode>/<python version> so switching
// interpreters never reuses an incompatible environment. The lock file name only
// depends on the mode: a lock is portable across interpreters.
func ResolvePaths(project, pythonVersion string, settings ProjectSettings) (Paths, error) {
	project = filepath.Clean(project)
	venv := filepath.Join(project, VenvDirName, EnvName(pythonVersion, settings))

	if parent := filepath.Dir(venv); parent == venv {
		return Paths{}, zerr.With(zerr.Wrap(ErrNoParentDirectory, venv), "path", venv)
	}

	return Paths{
		Project: project,
		Venv:    venv,
		Lock:    filepath.Join(project, settings.LockFileName()),
		SetupPy: filepath.Join(project, SetupPyFileName),
	}, nil
}
