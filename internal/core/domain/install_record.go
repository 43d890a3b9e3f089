package domain

import "time"

// InstallRecord remembers which lock content was last installed into a virtualenv.
type InstallRecord struct {
	// EnvName identifies the virtualenv, e.g. "dev/3.9.7".
	EnvName string `json:"env_name,omitzero"`
	// Interpreter is the python executable the virtualenv was created from.
	Interpreter string `json:"interpreter,omitzero"`
	// LockDigest is the digest of the lock file content that was installed.
	LockDigest  string    `json:"lock_digest,omitzero"`
	InstalledAt time.Time `json:"installed_at,omitzero"`
}
