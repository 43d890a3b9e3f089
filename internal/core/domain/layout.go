package domain

import (
	"os"
	"path/filepath"
)

const (
	// VenvDirName is the directory, relative to the project, holding every virtualenv.
	VenvDirName = ".venv"

	// DevLockFileName is the lock file used in development mode.
	DevLockFileName = "requirements.lock"

	// ProdLockFileName is the lock file used in production mode.
	ProdLockFileName = "production.lock"

	// SetupPyFileName is the name of the project build descriptor.
	SetupPyFileName = "setup.py"

	// DotEnvFileName is the optional file whose variables are injected into `run`.
	DotEnvFileName = ".env"

	// ConfigDirName is the directory under the user config dir holding the config file.
	ConfigDirName = "pinenv"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.toml"

	// ActiveEnvVar is set by the activate scripts of a virtualenv.
	ActiveEnvVar = "VIRTUAL_ENV"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the config file location under the user config directory.
// It returns an empty string when the user config directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}
