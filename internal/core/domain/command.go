package domain

import "strings"

// Command describes a child process to launch.
type Command struct {
	// Program is the executable path or name.
	Program string
	// Args are passed to the program as-is.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds KEY=VALUE entries merged over the parent environment.
	// A PATH entry is prepended to the inherited PATH.
	Env []string
	// Label replaces the command line in logs. Labelled commands are logged
	// at debug level.
	Label string
}

// String renders the command line.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// LogLine returns what the runner logs when starting the command.
func (c Command) LogLine() string {
	if c.Label != "" {
		return c.Label
	}
	return c.String()
}

// VenvEnv returns the environment entries that activate a virtualenv for a child
// process: its bin directory first on PATH and VIRTUAL_ENV pointing at it.
func VenvEnv(venv, binDir string) []string {
	return []string{
		"PATH=" + binDir,
		ActiveEnvVar + "=" + venv,
	}
}
