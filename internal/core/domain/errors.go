package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingSetupDescriptor is returned when an operation needs setup.py and it does not exist.
	ErrMissingSetupDescriptor = zerr.New("setup.py not found, you may want to run `pinenv init` first")

	// ErrSetupDescriptorExists is returned by init when setup.py is already present.
	ErrSetupDescriptorExists = zerr.New("setup.py already exists")

	// ErrMissingEnvironment is returned when an operation expects an existing virtualenv.
	ErrMissingEnvironment = zerr.New("virtualenv does not exist")

	// ErrMissingLock is returned when the lock file for the selected mode does not exist.
	ErrMissingLock = zerr.New("lock file does not exist, run `pinenv lock` first")

	// ErrEnvironmentCreationFailed is returned when `python -m venv` exits with a failure.
	ErrEnvironmentCreationFailed = zerr.New("failed to create virtualenv")

	// ErrPipUpgradeFailed is returned when upgrading pip inside the virtualenv fails.
	ErrPipUpgradeFailed = zerr.New("failed to upgrade pip")

	// ErrBinaryNotFound is returned when an executable is missing from the virtualenv.
	ErrBinaryNotFound = zerr.New("binary not found in virtualenv")

	// ErrDependencyNotFound is returned by bump when the lock has no record with the requested name.
	ErrDependencyNotFound = zerr.New("dependency not found in lock")

	// ErrInvalidSourceRef is returned by bump when a bare revision is given for a
	// dependency that is not pinned to a VCS URL.
	ErrInvalidSourceRef = zerr.New("a bare revision needs a VCS pin, pass a full URL instead")

	// ErrMalformedDependencyLine is returned when a freeze or lock line matches no known grammar.
	ErrMalformedDependencyLine = zerr.New("malformed dependency line")

	// ErrActiveEnvironmentConflict is returned by tidy when the calling shell has a virtualenv activated.
	ErrActiveEnvironmentConflict = zerr.New("a virtualenv is already activated, deactivate it before running tidy")

	// ErrNoParentDirectory is returned when the computed virtualenv path has no parent.
	ErrNoParentDirectory = zerr.New("virtualenv path has no parent directory")

	// ErrExternalCommandFailed is returned when a child process exits unsuccessfully.
	ErrExternalCommandFailed = zerr.New("external command failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownPythonEnv is returned when --env names an entry missing from the config.
	ErrUnknownPythonEnv = zerr.New("unknown python environment")

	// ErrInterpreterProbeFailed is returned when the interpreter cannot report its version and platform.
	ErrInterpreterProbeFailed = zerr.New("failed to query python interpreter")

	// ErrLockWriteFailed is returned when the lock file cannot be replaced on disk.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrLockReadFailed is returned when an existing lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrStoreReadFailed is returned when the install record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read install records")

	// ErrStoreWriteFailed is returned when the install record store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write install records")

	// ErrRunFailed is returned by run when the child program exits with a failure status.
	// Its exit_code metadata is forwarded as pinenv's own exit status.
	ErrRunFailed = zerr.New("program exited with a failure status")

	// ErrNoCommand is returned by run when no program was given.
	ErrNoCommand = zerr.New("no command given")
)

// ExitCodeKey is the zerr metadata key carrying a child process exit status.
const ExitCodeKey = "exit_code"

// failureKeys are the child process details a runner error carries.
var failureKeys = []string{"program", ExitCodeKey, "stderr", "reason"}

// WithFailure attaches the child process details found in cause's chain to
// err. The outermost value wins when a key appears more than once.
func WithFailure(err, cause error) error {
	seen := make(map[string]struct{}, len(failureKeys))
	for cause != nil {
		var z *zerr.Error
		if !errors.As(cause, &z) {
			break
		}
		meta := z.Metadata()
		for _, key := range failureKeys {
			if _, ok := seen[key]; ok {
				continue
			}
			if v, ok := meta[key]; ok {
				seen[key] = struct{}{}
				err = zerr.With(err, key, v)
			}
		}
		cause = z.Unwrap()
	}
	return err
}

// ExitCode returns the child process exit status recorded anywhere in err's chain.
// The second result is false when no exit status was recorded.
func ExitCode(err error) (int, bool) {
	for err != nil {
		var z *zerr.Error
		if !errors.As(err, &z) {
			return 0, false
		}
		if code, ok := z.Metadata()[ExitCodeKey].(int); ok {
			return code, true
		}
		err = z.Unwrap()
	}
	return 0, false
}
