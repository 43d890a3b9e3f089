package domain

// Mode selects which setup.py extra and lock file a project uses.
type Mode string

const (
	// ModeDevelopment installs the "dev" extra and uses requirements.lock.
	ModeDevelopment Mode = "dev"
	// ModeProduction installs the "prod" extra and uses production.lock.
	ModeProduction Mode = "prod"
)

// ProjectSettings holds the user choices that shape paths and environment creation.
// It is built once at startup and never mutated afterwards.
type ProjectSettings struct {
	Production         bool
	SystemSitePackages bool
}

// Mode returns the mode selected by the settings.
func (s ProjectSettings) Mode() Mode {
	if s.Production {
		return ModeProduction
	}
	return ModeDevelopment
}

// Extra returns the setup.py extra to install, e.g. "dev".
func (s ProjectSettings) Extra() string {
	return string(s.Mode())
}

// LockFileName returns the lock file name for the selected mode.
func (s ProjectSettings) LockFileName() string {
	if s.Production {
		return ProdLockFileName
	}
	return DevLockFileName
}

// InterpreterInfo describes the python interpreter used to create virtualenvs.
type InterpreterInfo struct {
	// Executable is the configured interpreter binary, e.g. "/usr/bin/python3".
	Executable string
	// Version is the full interpreter version, e.g. "3.9.7".
	Version string
	// Platform is the interpreter's platform label, e.g. "Linux-5.15.0-x86_64-with-glibc2.35".
	Platform string
}

// Metadata is recorded in the lock file header so a lock is traceable to its toolchain.
type Metadata struct {
	ToolVersion    string
	PythonVersion  string
	PythonPlatform string
	Mode           Mode
}

// NewMetadata builds lock metadata for the given tool version, interpreter and settings.
func NewMetadata(toolVersion string, info InterpreterInfo, settings ProjectSettings) Metadata {
	return Metadata{
		ToolVersion:    toolVersion,
		PythonVersion:  info.Version,
		PythonPlatform: info.Platform,
		Mode:           settings.Mode(),
	}
}
