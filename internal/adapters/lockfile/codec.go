// Package lockfile reads and writes pinenv lock files.
//
// A lock file is a pip requirements file whose leading comment lines carry
// metadata as "# key: value" pairs:
//
//	# Generated by pinenv, do not edit by hand
//	# pinenv_version: 0.3.0
//	# python_version: 3.9.7
//	# python_platform: Linux-5.15.0-x86_64-with-glibc2.35
//	# mode: dev
//	click==7.0
//	requests==2.25.0
package lockfile

import (
	"bytes"
	"strings"

	"go.trai.ch/pinenv/internal/core/domain"
)

const (
	banner = "Generated by pinenv, do not edit by hand"

	keyToolVersion    = "pinenv_version"
	keyPythonVersion  = "python_version"
	keyPythonPlatform = "python_platform"
	keyMode           = "mode"
)

// Encode renders the lock file. Records are written in the given order.
func Encode(lf *domain.Lockfile) []byte {
	var b bytes.Buffer

	b.WriteString("# " + banner + "\n")
	writeHeader(&b, keyToolVersion, lf.Metadata.ToolVersion)
	writeHeader(&b, keyPythonVersion, lf.Metadata.PythonVersion)
	writeHeader(&b, keyPythonPlatform, lf.Metadata.PythonPlatform)
	writeHeader(&b, keyMode, string(lf.Metadata.Mode))

	for _, dep := range lf.Dependencies {
		b.WriteString(dep.Line())
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func writeHeader(b *bytes.Buffer, key, value string) {
	if value == "" {
		return
	}
	b.WriteString("# " + key + ": " + value + "\n")
}

// Decode parses lock file content. Unknown comments and blank lines are ignored.
func Decode(data []byte) (*domain.Lockfile, error) {
	lf := &domain.Lockfile{}

	for line := range strings.Lines(string(data)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if comment, ok := strings.CutPrefix(trimmed, "#"); ok {
			readHeader(&lf.Metadata, comment)
			continue
		}

		dep, err := domain.ParseFreezeLine(trimmed)
		if err != nil {
			return nil, err
		}
		lf.Dependencies = append(lf.Dependencies, dep)
	}
	return lf, nil
}

func readHeader(md *domain.Metadata, comment string) {
	key, value, ok := strings.Cut(strings.TrimSpace(comment), ": ")
	if !ok {
		return
	}
	value = strings.TrimSpace(value)

	switch key {
	case keyToolVersion:
		md.ToolVersion = value
	case keyPythonVersion:
		md.PythonVersion = value
	case keyPythonPlatform:
		md.PythonPlatform = value
	case keyMode:
		md.Mode = domain.Mode(value)
	}
}
