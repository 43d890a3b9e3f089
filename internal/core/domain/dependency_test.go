package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseFreezeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Dependency
	}{
		{
			name: "registry pin",
			line: "requests==2.25.0",
			want: domain.Dependency{Name: "requests", Version: "2.25.0"},
		},
		{
			name: "arbitrary equality is normalised",
			line: "legacy===1.0-custom",
			want: domain.Dependency{Name: "legacy", Version: "1.0-custom"},
		},
		{
			name: "registry pin with marker",
			line: `attrs==19.1.0; python_version < "3.8"`,
			want: domain.Dependency{Name: "attrs", Version: "19.1.0", Marker: `python_version < "3.8"`},
		},
		{
			name: "source pin",
			line: "foo @ git+https://github.com/acme/foo@abc123",
			want: domain.Dependency{Name: "foo", SourceRef: "git+https://github.com/acme/foo@abc123"},
		},
		{
			name: "source pin with marker",
			line: `bar @ https://example.com/bar-1.0.tar.gz ; sys_platform == "win32"`,
			want: domain.Dependency{
				Name:      "bar",
				SourceRef: "https://example.com/bar-1.0.tar.gz",
				Marker:    `sys_platform == "win32"`,
			},
		},
		{
			name: "editable vcs checkout",
			line: "-e git+https://github.com/acme/baz@deadbeef#egg=baz",
			want: domain.Dependency{Name: "baz", SourceRef: "git+https://github.com/acme/baz@deadbeef#egg=baz"},
		},
		{
			name: "surrounding whitespace",
			line: "  six==1.16.0\n",
			want: domain.Dependency{Name: "six", Version: "1.16.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseFreezeLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFreezeLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"requests",
		"requests>=2.0",
		"==1.0",
		"name with spaces==1.0",
		"foo @ ",
		"-e git+https://github.com/acme/baz@deadbeef",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := domain.ParseFreezeLine(line)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedDependencyLine))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, line, zErr.Metadata()["line"])
		})
	}
}

func TestParseFreezeOutput_FiltersPkgResources(t *testing.T) {
	out := "# generated\nclick==7.0\n\npkg-resources==0.0.0\nrequests==2.25.0\n"

	deps, err := domain.ParseFreezeOutput(out)
	require.NoError(t, err)

	assert.Equal(t, []domain.Dependency{
		{Name: "click", Version: "7.0"},
		{Name: "requests", Version: "2.25.0"},
	}, deps)
}

func TestParseFreezeOutput_StopsOnMalformedLine(t *testing.T) {
	_, err := domain.ParseFreezeOutput("click==7.0\nthis is not a pin\n")
	require.ErrorIs(t, err, domain.ErrMalformedDependencyLine)
}

func TestDependency_Line(t *testing.T) {
	tests := []struct {
		dep  domain.Dependency
		want string
	}{
		{domain.Dependency{Name: "a", Version: "1.0"}, "a==1.0"},
		{domain.Dependency{Name: "a", Version: "1.0", Marker: `python_version < "3.8"`}, `a==1.0; python_version < "3.8"`},
		{domain.Dependency{Name: "b", SourceRef: "git+https://x/b@1"}, "b @ git+https://x/b@1"},
		{domain.Dependency{Name: "b", SourceRef: "git+https://x/b@1", Marker: "os_name == 'nt'"}, "b @ git+https://x/b@1 ; os_name == 'nt'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dep.Line())

		parsed, err := domain.ParseFreezeLine(tt.want)
		require.NoError(t, err)
		assert.Equal(t, tt.dep, parsed)
	}
}

func TestDependency_WithSourceRef(t *testing.T) {
	tests := []struct {
		name string
		dep  domain.Dependency
		ref  string
		want string
	}{
		{
			name: "revision replaced",
			dep:  domain.Dependency{Name: "foo", SourceRef: "git+https://github.com/acme/foo@abc123"},
			ref:  "def456",
			want: "git+https://github.com/acme/foo@def456",
		},
		{
			name: "fragment kept",
			dep:  domain.Dependency{Name: "foo", SourceRef: "git+https://github.com/acme/foo@abc#egg=foo"},
			ref:  "v2.0",
			want: "git+https://github.com/acme/foo@v2.0#egg=foo",
		},
		{
			name: "user info untouched",
			dep:  domain.Dependency{Name: "foo", SourceRef: "git+ssh://git@github.com/acme/foo@abc"},
			ref:  "main",
			want: "git+ssh://git@github.com/acme/foo@main",
		},
		{
			name: "revision added",
			dep:  domain.Dependency{Name: "foo", SourceRef: "git+https://github.com/acme/foo"},
			ref:  "abc",
			want: "git+https://github.com/acme/foo@abc",
		},
		{
			name: "registry pin switched verbatim",
			dep:  domain.Dependency{Name: "foo", Version: "1.0"},
			ref:  "git+https://github.com/acme/foo@abc",
			want: "git+https://github.com/acme/foo@abc",
		},
		{
			name: "full url replaces vcs ref",
			dep:  domain.Dependency{Name: "foo", SourceRef: "git+https://github.com/acme/foo@abc"},
			ref:  "https://example.com/foo.tar.gz",
			want: "https://example.com/foo.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dep.WithSourceRef(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.SourceRef)
			assert.Empty(t, got.Version)
			assert.True(t, got.IsSourcePin())
		})
	}
}

func TestDependency_WithSourceRef_BareRevision(t *testing.T) {
	for _, dep := range []domain.Dependency{
		{Name: "requests", Version: "2.25.0"},
		{Name: "bar", SourceRef: "https://example.com/bar-1.0.tar.gz"},
	} {
		t.Run(dep.Name, func(t *testing.T) {
			_, err := dep.WithSourceRef("2.31.0")

			require.ErrorIs(t, err, domain.ErrInvalidSourceRef)
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, dep.Name, zErr.Metadata()["name"])
		})
	}
}

func TestDependency_WithVersion(t *testing.T) {
	dep := domain.Dependency{Name: "foo", SourceRef: "git+https://x/foo@a", Marker: "m"}

	got := dep.WithVersion("2.0")

	assert.Equal(t, domain.Dependency{Name: "foo", Version: "2.0", Marker: "m"}, got)
	assert.False(t, got.IsSourcePin())
}
