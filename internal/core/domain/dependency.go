package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// pkgResources is emitted by some distro-patched pips and has no install semantics.
const pkgResources = "pkg-resources"

var (
	nameRE    = regexp.MustCompile(`^[A-Za-z0-9][-A-Za-z0-9._]*$`)
	versionRE = regexp.MustCompile(`^[^\s;]+$`)
	vcsPrefix = []string{"git+", "hg+", "svn+", "bzr+"}
)

// Dependency is a single pinned package in a lock file.
// Exactly one of Version and SourceRef is set.
type Dependency struct {
	// Name is the distribution name as reported by pip freeze.
	Name string
	// Version is the exact registry version for "name==version" pins.
	Version string
	// SourceRef is the URL reference for "name @ ref" pins.
	SourceRef string
	// Marker is an optional PEP 508 environment marker, without the leading ';'.
	Marker string
}

// IsSourcePin reports whether the dependency is pinned to a URL reference.
func (d Dependency) IsSourcePin() bool {
	return d.SourceRef != ""
}

// Line renders the dependency in requirements format.
func (d Dependency) Line() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.IsSourcePin() {
		b.WriteString(" @ ")
		b.WriteString(d.SourceRef)
	} else {
		b.WriteString("==")
		b.WriteString(d.Version)
	}
	if d.Marker != "" {
		if d.IsSourcePin() {
			b.WriteString(" ")
		}
		b.WriteString("; ")
		b.WriteString(d.Marker)
	}
	return b.String()
}

// WithVersion returns a copy pinned to the given registry version.
func (d Dependency) WithVersion(version string) Dependency {
	d.Version = version
	d.SourceRef = ""
	return d
}

// WithSourceRef returns a copy pinned to a source reference.
// If the dependency is already a VCS pin and ref is a bare revision, only the
// revision part of the URL is replaced. A full URL is used verbatim. A bare
// revision for any other dependency fails with ErrInvalidSourceRef.
func (d Dependency) WithSourceRef(ref string) (Dependency, error) {
	switch {
	case strings.Contains(ref, "://"):
		d.SourceRef = ref
	case isVCS(d.SourceRef):
		d.SourceRef = replaceRevision(d.SourceRef, ref)
	default:
		return Dependency{}, zerr.With(zerr.With(zerr.Wrap(ErrInvalidSourceRef, ref), "name", d.Name), "ref", ref)
	}
	d.Version = ""
	return d, nil
}

// ParseFreezeLine parses one line of pip freeze output or lock file content.
//
// Recognised shapes are "name==version", "name===version", "name @ ref" and the
// editable "-e <vcs-url>#egg=name". Each may carry a "; marker" suffix.
func ParseFreezeLine(line string) (Dependency, error) {
	trimmed := strings.TrimSpace(line)

	if rest, ok := cutEditable(trimmed); ok {
		return parseEditable(line, rest)
	}

	if name, rest, ok := strings.Cut(trimmed, " @ "); ok {
		ref, marker := splitMarker(rest, " ;")
		dep := Dependency{Name: strings.TrimSpace(name), SourceRef: strings.TrimSpace(ref), Marker: marker}
		if !nameRE.MatchString(dep.Name) || dep.SourceRef == "" {
			return Dependency{}, malformed(line)
		}
		return dep, nil
	}

	req, marker := splitMarker(trimmed, ";")
	name, version, ok := strings.Cut(req, "==")
	if !ok {
		return Dependency{}, malformed(line)
	}
	version = strings.TrimPrefix(version, "=")
	dep := Dependency{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version), Marker: marker}
	if !nameRE.MatchString(dep.Name) || !versionRE.MatchString(dep.Version) {
		return Dependency{}, malformed(line)
	}
	return dep, nil
}

// ParseFreezeOutput parses the full output of pip freeze.
// Blank lines and comments are skipped and pkg-resources is dropped.
func ParseFreezeOutput(output string) ([]Dependency, error) {
	var deps []Dependency
	for line := range strings.Lines(output) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		dep, err := ParseFreezeLine(trimmed)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return FilterFrozen(deps), nil
}

// FilterFrozen removes packages that must never be written to a lock file.
func FilterFrozen(deps []Dependency) []Dependency {
	res := make([]Dependency, 0, len(deps))
	for _, dep := range deps {
		if dep.Name == pkgResources {
			continue
		}
		res = append(res, dep)
	}
	return res
}

func malformed(line string) error {
	return zerr.With(zerr.Wrap(ErrMalformedDependencyLine, strings.TrimSpace(line)), "line", line)
}

func cutEditable(line string) (string, bool) {
	for _, prefix := range []string{"-e ", "--editable "} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func parseEditable(line, ref string) (Dependency, error) {
	_, fragment, ok := strings.Cut(ref, "#")
	if !ok {
		return Dependency{}, malformed(line)
	}
	for part := range strings.SplitSeq(fragment, "&") {
		if name, found := strings.CutPrefix(part, "egg="); found && nameRE.MatchString(name) {
			return Dependency{Name: name, SourceRef: ref}, nil
		}
	}
	return Dependency{}, malformed(line)
}

func splitMarker(s, sep string) (string, string) {
	req, marker, ok := strings.Cut(s, sep)
	if !ok {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(req), strings.TrimSpace(marker)
}

func isVCS(ref string) bool {
	for _, prefix := range vcsPrefix {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// replaceRevision swaps the "@rev" part of a VCS URL, keeping any "#fragment".
func replaceRevision(ref, rev string) string {
	base, fragment, hasFragment := strings.Cut(ref, "#")

	pathStart := 0
	if _, afterScheme, ok := strings.Cut(base, "://"); ok {
		pathStart = len(base) - len(afterScheme)
		if slash := strings.Index(afterScheme, "/"); slash >= 0 {
			pathStart += slash
		}
	}
	if at := strings.LastIndex(base[pathStart:], "@"); at >= 0 {
		base = base[:pathStart+at]
	}

	out := base + "@" + rev
	if hasFragment {
		out += "#" + fragment
	}
	return out
}
