package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinenv/cmd/pinenv/commands"
	"go.trai.ch/pinenv/internal/app"
	"go.trai.ch/pinenv/internal/build"
	"go.trai.ch/pinenv/internal/core/domain"
)

type mockApp struct {
	opts    app.Options
	project *mockProject
	err     error
}

func (m *mockApp) Open(_ context.Context, opts app.Options) (commands.Project, error) {
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.project, nil
}

type mockProject struct {
	calls     []string
	initOpts  app.InitOptions
	install   app.InstallOptions
	lock      app.LockOptions
	bumpArgs  []string
	bumpGit   bool
	activeEnv string
	runArgs   []string
	status    domain.Status
	err       error
	venvPath  string
	binPath   string
}

func (m *mockProject) record(name string) error {
	m.calls = append(m.calls, name)
	return m.err
}

func (m *mockProject) Paths() domain.Paths { return m.status.Paths }

func (m *mockProject) Init(opts app.InitOptions) error {
	m.initOpts = opts
	return m.record("init")
}

func (m *mockProject) Install(_ context.Context, opts app.InstallOptions) error {
	m.install = opts
	return m.record("install")
}

func (m *mockProject) Lock(_ context.Context, opts app.LockOptions) error {
	m.lock = opts
	return m.record("lock")
}

func (m *mockProject) Bump(name, version string, git bool) error {
	m.bumpArgs = []string{name, version}
	m.bumpGit = git
	return m.record("bump")
}

func (m *mockProject) Tidy(_ context.Context, activeEnv string) error {
	m.activeEnv = activeEnv
	return m.record("tidy")
}

func (m *mockProject) Develop(context.Context) error    { return m.record("develop") }
func (m *mockProject) UpgradePip(context.Context) error { return m.record("upgrade-pip") }

func (m *mockProject) Run(_ context.Context, args []string) error {
	m.runArgs = args
	return m.record("run")
}

func (m *mockProject) ShowDeps(context.Context) error     { return m.record("show deps") }
func (m *mockProject) ShowOutdated(context.Context) error { return m.record("show outdated") }
func (m *mockProject) ShowVenvPath() string               { return m.venvPath }

func (m *mockProject) ShowBinPath() (string, error) {
	return m.binPath, m.record("show bin-path")
}

func (m *mockProject) Clean() error { return m.record("clean") }

func (m *mockProject) Status() (domain.Status, error) {
	return m.status, m.record("status")
}

type logConfig struct {
	json, verbose bool
}

func (l *logConfig) SetJSON(enable bool)    { l.json = enable }
func (l *logConfig) SetVerbose(enable bool) { l.verbose = enable }

func execute(t *testing.T, a *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a).WithGetenv(func(string) string { return "" })
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	a := &mockApp{project: &mockProject{}}

	_, err := execute(t, a, "install", "--project", "/work/app", "--production",
		"--system-site-packages", "--env", "3.8", "--config", "/etc/pinenv.toml")

	require.NoError(t, err)
	assert.Equal(t, app.Options{
		Project:    "/work/app",
		ConfigPath: "/etc/pinenv.toml",
		EnvName:    "3.8",
		Settings:   domain.ProjectSettings{Production: true, SystemSitePackages: true},
	}, a.opts)
}

func TestCommands_Dispatch(t *testing.T) {
	tests := []struct {
		args  []string
		call  string
		check func(t *testing.T, p *mockProject)
	}{
		{
			args: []string{"init", "foo", "--author", "Jane"},
			call: "init",
			check: func(t *testing.T, p *mockProject) {
				assert.Equal(t, app.InitOptions{Name: "foo", Author: "Jane"}, p.initOpts)
			},
		},
		{
			args: []string{"install", "--no-develop"},
			call: "install",
			check: func(t *testing.T, p *mockProject) {
				assert.True(t, p.install.NoDevelop)
			},
		},
		{
			args: []string{"lock", "--python-version", "< 3.8", "--platform", "win32"},
			call: "lock",
			check: func(t *testing.T, p *mockProject) {
				assert.Equal(t, app.LockOptions{PythonVersion: "< 3.8", SysPlatform: "win32"}, p.lock)
			},
		},
		{
			args: []string{"bump", "requests", "2.31.0"},
			call: "bump",
			check: func(t *testing.T, p *mockProject) {
				assert.Equal(t, []string{"requests", "2.31.0"}, p.bumpArgs)
				assert.False(t, p.bumpGit)
			},
		},
		{
			args: []string{"bump", "foo", "abc123", "--git"},
			call: "bump",
			check: func(t *testing.T, p *mockProject) {
				assert.True(t, p.bumpGit)
			},
		},
		{args: []string{"tidy"}, call: "tidy"},
		{args: []string{"develop"}, call: "develop"},
		{args: []string{"upgrade-pip"}, call: "upgrade-pip"},
		{args: []string{"show", "deps"}, call: "show deps"},
		{args: []string{"show", "outdated"}, call: "show outdated"},
		{args: []string{"clean"}, call: "clean"},
		{
			args: []string{"run", "pytest", "-x", "--lf"},
			call: "run",
			check: func(t *testing.T, p *mockProject) {
				assert.Equal(t, []string{"pytest", "-x", "--lf"}, p.runArgs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			p := &mockProject{}
			_, err := execute(t, &mockApp{project: p}, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, []string{tt.call}, p.calls)
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestCommands_TidyPassesActiveEnv(t *testing.T) {
	p := &mockProject{}
	cli := commands.New(&mockApp{project: p}).WithGetenv(func(key string) string {
		if key == "VIRTUAL_ENV" {
			return "/home/me/venv"
		}
		return ""
	})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"tidy"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/home/me/venv", p.activeEnv)
}

func TestCommands_ShowPaths(t *testing.T) {
	p := &mockProject{venvPath: "/work/app/.venv/dev/3.9.7", binPath: "/work/app/.venv/dev/3.9.7/bin"}

	out, err := execute(t, &mockApp{project: p}, "show", "venv-path")
	require.NoError(t, err)
	assert.Equal(t, "/work/app/.venv/dev/3.9.7\n", out)

	out, err = execute(t, &mockApp{project: p}, "show", "bin-path")
	require.NoError(t, err)
	assert.Equal(t, "/work/app/.venv/dev/3.9.7/bin\n", out)
}

func TestCommands_Errors(t *testing.T) {
	t.Run("open failure", func(t *testing.T) {
		_, err := execute(t, &mockApp{err: domain.ErrUnknownPythonEnv}, "install")
		require.ErrorIs(t, err, domain.ErrUnknownPythonEnv)
	})

	t.Run("operation failure", func(t *testing.T) {
		p := &mockProject{err: domain.ErrMissingLock}
		_, err := execute(t, &mockApp{project: p}, "install")
		require.ErrorIs(t, err, domain.ErrMissingLock)
	})

	t.Run("bump needs two arguments", func(t *testing.T) {
		p := &mockProject{}
		_, err := execute(t, &mockApp{project: p}, "bump", "requests")
		require.Error(t, err)
		assert.Empty(t, p.calls)
	})

	t.Run("run needs a program", func(t *testing.T) {
		p := &mockProject{}
		_, err := execute(t, &mockApp{project: p}, "run")
		require.Error(t, err)
		assert.Empty(t, p.calls)
	})
}

func TestCommands_Status(t *testing.T) {
	p := &mockProject{status: domain.Status{
		State: domain.StateLocked,
		Paths: domain.Paths{
			Project: "/work/app",
			Venv:    "/work/app/.venv/dev/3.9.7",
			Lock:    "/work/app/requirements.lock",
		},
		HasVenv:   true,
		HasLock:   true,
		InSync:    true,
		Installed: &domain.InstallRecord{InstalledAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}}

	out, err := execute(t, &mockApp{project: p}, "status")

	require.NoError(t, err)
	assert.Equal(t, "locked\n"+
		"project     /work/app\n"+
		"virtualenv  ✓ /work/app/.venv/dev/3.9.7\n"+
		"lock        ✓ /work/app/requirements.lock\n"+
		"installed   ● in sync since 2024-03-01T12:00:00Z\n", out)
}

func TestCommands_StatusJSON(t *testing.T) {
	p := &mockProject{status: domain.Status{
		State: domain.StateDescriptorOnly,
		Paths: domain.Paths{Project: "/work/app"},
	}}

	out, err := execute(t, &mockApp{project: p}, "status", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"state": "setup.py only",
		"project": "/work/app",
		"venv": "",
		"lock": "",
		"has_venv": false,
		"has_lock": false,
		"in_sync": false
	}`, out)
}

func TestCommands_LogFlags(t *testing.T) {
	lc := &logConfig{}
	cli := commands.New(&mockApp{project: &mockProject{}}).WithLogConfig(lc)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "--json", "-v"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, lc.json)
	assert.True(t, lc.verbose)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")

	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_OpenErrorIsReturnedUnchanged(t *testing.T) {
	sentinel := errors.New("boom")
	_, err := execute(t, &mockApp{err: sentinel}, "status")
	require.ErrorIs(t, err, sentinel)
}
