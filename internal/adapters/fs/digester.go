// Package fs provides filesystem helpers backed by the local disk.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes XXHash digests of file content.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// DigestFile returns the XXHash of the file content as 16 hex digits.
func (d *Digester) DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
