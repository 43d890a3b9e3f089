package domain

import "go.trai.ch/zerr"

// DefaultEnvName is the python environment used when --env is not given.
const DefaultEnvName = "default"

// PythonEnv names the interpreter used for one entry of the config file.
type PythonEnv struct {
	Python string
}

// Config is the user configuration shared by every project.
type Config struct {
	// Envs maps an environment name, selected with --env, to its interpreter.
	Envs map[string]PythonEnv
	// Settings are defaults OR-ed with the command line flags.
	Settings ProjectSettings
}

// PythonFor returns the interpreter binary for the named environment.
//
// An unknown name fails with ErrUnknownPythonEnv, except DefaultEnvName which
// falls back to the platform's python binary.
func (c *Config) PythonFor(name, goos string) (string, error) {
	if name == "" {
		name = DefaultEnvName
	}
	if c != nil {
		if env, ok := c.Envs[name]; ok && env.Python != "" {
			return env.Python, nil
		}
	}
	if name == DefaultEnvName {
		return DefaultPythonBinary(goos), nil
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownPythonEnv, name), "env", name)
}

// Merge returns the settings of the config OR-ed with the given flags.
func (c *Config) Merge(flags ProjectSettings) ProjectSettings {
	if c == nil {
		return flags
	}
	return ProjectSettings{
		Production:         flags.Production || c.Settings.Production,
		SystemSitePackages: flags.SystemSitePackages || c.Settings.SystemSitePackages,
	}
}
