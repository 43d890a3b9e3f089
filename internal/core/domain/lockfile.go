package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Lockfile is the full content of a lock file: a metadata header followed by
// an ordered list of pinned dependencies. It is always written as a whole.
type Lockfile struct {
	Metadata     Metadata
	Dependencies []Dependency
}

// MarkerOptions restricts dependencies that are new to a lock to a given
// interpreter version or platform.
type MarkerOptions struct {
	// PythonVersion is a version clause such as "< 3.8", rendered as python_version < "3.8".
	PythonVersion string
	// SysPlatform is a sys.platform value such as "win32", rendered as sys_platform == "win32".
	SysPlatform string
}

// Marker renders the options as a PEP 508 marker, or "" when empty.
func (o MarkerOptions) Marker() string {
	var clauses []string
	if o.PythonVersion != "" {
		op, version := splitVersionClause(o.PythonVersion)
		clauses = append(clauses, fmt.Sprintf("python_version %s %q", op, version))
	}
	if o.SysPlatform != "" {
		clauses = append(clauses, fmt.Sprintf("sys_platform == %q", o.SysPlatform))
	}
	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	default:
		return clauses[0] + " and " + clauses[1]
	}
}

// Index returns the position of the dependency with exactly the given name, or -1.
func (l *Lockfile) Index(name string) int {
	for i, dep := range l.Dependencies {
		if dep.Name == name {
			return i
		}
	}
	return -1
}

// ByName returns the dependencies of the lock keyed by name.
func (l *Lockfile) ByName() map[string]Dependency {
	deps := make(map[string]Dependency, len(l.Dependencies))
	for _, dep := range l.Dependencies {
		deps[dep.Name] = dep
	}
	return deps
}

// Bump pins the named dependency to a new version, or to a source reference
// when useSourceRef is set. Every other record keeps its content and position.
// Bump never adds a dependency.
func (l *Lockfile) Bump(name, version string, useSourceRef bool) error {
	i := l.Index(name)
	if i < 0 {
		return zerr.With(zerr.Wrap(ErrDependencyNotFound, name), "name", name)
	}
	if !useSourceRef {
		l.Dependencies[i] = l.Dependencies[i].WithVersion(version)
		return nil
	}
	dep, err := l.Dependencies[i].WithSourceRef(version)
	if err != nil {
		return err
	}
	l.Dependencies[i] = dep
	return nil
}

// Merge returns the dependencies of a fresh freeze combined with the lock.
//
// Fresh records come first, in freeze order, and keep the marker of the
// same-named record already in the lock. Records new to the lock get the marker
// from opts. Old records carrying a marker that the freeze did not report are
// kept at the end: they pin packages for another interpreter or platform.
func (l *Lockfile) Merge(fresh []Dependency, opts MarkerOptions) []Dependency {
	old := l.ByName()

	seen := make(map[string]struct{}, len(fresh))
	res := make([]Dependency, 0, len(fresh))
	for _, dep := range fresh {
		seen[dep.Name] = struct{}{}
		if prev, ok := old[dep.Name]; ok {
			dep.Marker = prev.Marker
		} else if dep.Marker == "" {
			dep.Marker = opts.Marker()
		}
		res = append(res, dep)
	}

	for _, dep := range l.Dependencies {
		if _, ok := seen[dep.Name]; ok || dep.Marker == "" {
			continue
		}
		res = append(res, dep)
	}
	return res
}

// KeepKnown returns the fresh records whose name already exists in the lock,
// in fresh order. The freshly frozen pin wins over the old one; the old marker
// is kept.
func (l *Lockfile) KeepKnown(fresh []Dependency) []Dependency {
	old := l.ByName()

	res := make([]Dependency, 0, len(fresh))
	for _, dep := range fresh {
		prev, ok := old[dep.Name]
		if !ok {
			continue
		}
		dep.Marker = prev.Marker
		res = append(res, dep)
	}
	return res
}

func splitVersionClause(clause string) (string, string) {
	clause = strings.TrimSpace(clause)
	for _, op := range []string{"<=", ">=", "==", "!=", "~=", "<", ">"} {
		if version, ok := strings.CutPrefix(clause, op); ok {
			return op, strings.TrimSpace(version)
		}
	}
	return "==", clause
}
