// Package dotenv loads KEY=VALUE files with godotenv.
package dotenv

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/joho/godotenv"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvFileLoader = (*Loader)(nil)

// Loader implements ports.EnvFileLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the variables defined in the file at path, sorted by key.
// A missing file yields no entries.
func (l *Loader) Load(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)
	return env, nil
}
