package domain

// ProjectState is the lifecycle stage of a project, derived from the filesystem.
type ProjectState int

const (
	// StateNoDescriptor means setup.py is missing.
	StateNoDescriptor ProjectState = iota
	// StateDescriptorOnly means setup.py exists but neither a virtualenv nor a lock does.
	StateDescriptorOnly
	// StateEnvironmentReady means the virtualenv exists and no lock has been written.
	StateEnvironmentReady
	// StateLocked means the lock file exists.
	StateLocked
)

// String returns the human readable state name.
func (s ProjectState) String() string {
	switch s {
	case StateNoDescriptor:
		return "no setup.py"
	case StateDescriptorOnly:
		return "setup.py only"
	case StateEnvironmentReady:
		return "virtualenv ready"
	case StateLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// ComputeState derives the project state from what exists on disk.
func ComputeState(hasDescriptor, hasVenv, hasLock bool) ProjectState {
	switch {
	case hasLock:
		return StateLocked
	case hasVenv:
		return StateEnvironmentReady
	case hasDescriptor:
		return StateDescriptorOnly
	default:
		return StateNoDescriptor
	}
}

// Status is a snapshot of a project for display.
type Status struct {
	State     ProjectState
	Paths     Paths
	HasVenv   bool
	HasLock   bool
	InSync    bool
	Installed *InstallRecord
}
