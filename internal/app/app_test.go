package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinenv/internal/app"
	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/pinenv/internal/core/ports/mocks"
	"go.trai.ch/pinenv/internal/engine/locker"
	"go.trai.ch/pinenv/internal/engine/pip"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const python = "/opt/python/bin/python3"

var (
	info = domain.InterpreterInfo{Executable: python, Version: "3.9.7", Platform: "Linux-x86_64"}
	now  = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

type fixture struct {
	app      *app.App
	dir      string
	loader   *mocks.MockConfigLoader
	probe    *mocks.MockInterpreterProbe
	env      *mocks.MockEnvironmentManager
	runner   *mocks.MockCommandRunner
	locks    *mocks.MockLockStore
	digester *mocks.MockDigester
	store    *mocks.MockInstallStateStore
	envFiles *mocks.MockEnvFileLoader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		dir:      t.TempDir(),
		loader:   mocks.NewMockConfigLoader(ctrl),
		probe:    mocks.NewMockInterpreterProbe(ctrl),
		env:      mocks.NewMockEnvironmentManager(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		locks:    mocks.NewMockLockStore(ctrl),
		digester: mocks.NewMockDigester(ctrl),
		store:    mocks.NewMockInstallStateStore(ctrl),
		envFiles: mocks.NewMockEnvFileLoader(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	installer := pip.New(f.runner, f.env, log)
	opener := ports.InstallStateStoreOpener(func(project string) (ports.InstallStateStore, error) {
		assert.Equal(t, f.dir, project)
		return f.store, nil
	})

	f.app = app.New(
		f.loader,
		f.probe,
		f.env,
		f.runner,
		installer,
		locker.New(f.env, installer, f.locks, log, "1.0.0"),
		f.digester,
		opener,
		f.envFiles,
		log,
	).WithClock(func() time.Time { return now })
	return f
}

func (f *fixture) open(t *testing.T, settings domain.ProjectSettings) *app.Project {
	t.Helper()
	f.loader.EXPECT().Load("").Return(&domain.Config{
		Envs: map[string]domain.PythonEnv{domain.DefaultEnvName: {Python: python}},
	}, nil)
	f.probe.EXPECT().Probe(gomock.Any(), python).Return(info, nil)

	project, err := f.app.Open(context.Background(), app.Options{Project: f.dir, Settings: settings})
	require.NoError(t, err)
	return project
}

func (f *fixture) expectVenvBinaries(paths domain.Paths) {
	binDir := filepath.Join(paths.Venv, "bin")
	f.env.EXPECT().BinDir(paths).Return(binDir).AnyTimes()
	f.env.EXPECT().ResolveBinary(paths, gomock.Any()).DoAndReturn(
		func(_ domain.Paths, name string) (string, error) {
			return filepath.Join(binDir, name), nil
		}).AnyTimes()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func missingEnv(paths domain.Paths) error {
	return zerr.With(zerr.Wrap(domain.ErrMissingEnvironment, paths.Venv), "path", paths.Venv)
}

func TestOpen_ResolvesPaths(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("/etc/pinenv.toml").Return(&domain.Config{
		Envs:     map[string]domain.PythonEnv{"3.9": {Python: python}},
		Settings: domain.ProjectSettings{SystemSitePackages: true},
	}, nil)
	f.probe.EXPECT().Probe(gomock.Any(), python).Return(info, nil)

	project, err := f.app.Open(context.Background(), app.Options{
		Project:    f.dir,
		ConfigPath: "/etc/pinenv.toml",
		EnvName:    "3.9",
		Settings:   domain.ProjectSettings{Production: true},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Paths{
		Project: f.dir,
		Venv:    filepath.Join(f.dir, ".venv", "prod", "3.9.7"),
		Lock:    filepath.Join(f.dir, "production.lock"),
		SetupPy: filepath.Join(f.dir, "setup.py"),
	}, project.Paths())
	assert.Equal(t, domain.ProjectSettings{Production: true, SystemSitePackages: true}, project.Settings())
	assert.Equal(t, info, project.Interpreter())
}

func TestOpen_UnknownEnv(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(&domain.Config{}, nil)

	_, err := f.app.Open(context.Background(), app.Options{Project: f.dir, EnvName: "pypy"})

	require.ErrorIs(t, err, domain.ErrUnknownPythonEnv)
}

func TestOpen_ProbeFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(&domain.Config{
		Envs: map[string]domain.PythonEnv{domain.DefaultEnvName: {Python: python}},
	}, nil)
	f.probe.EXPECT().Probe(gomock.Any(), python).
		Return(domain.InterpreterInfo{}, zerr.Wrap(domain.ErrInterpreterProbeFailed, python))

	_, err := f.app.Open(context.Background(), app.Options{Project: f.dir})

	require.ErrorIs(t, err, domain.ErrInterpreterProbeFailed)
}

func TestInit(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	require.NoError(t, project.Init(app.InitOptions{Name: "foo", Author: "Jane Doe"}))

	data, err := os.ReadFile(project.Paths().SetupPy)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="foo",`)
	assert.Contains(t, string(data), `version="0.1.0",`)
	assert.Contains(t, string(data), `author="Jane Doe",`)

	err = project.Init(app.InitOptions{Name: "bar"})
	require.ErrorIs(t, err, domain.ErrSetupDescriptorExists)
}

func TestInit_DefaultsNameToDirectory(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	require.NoError(t, project.Init(app.InitOptions{}))

	data, err := os.ReadFile(project.Paths().SetupPy)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="`+filepath.Base(f.dir)+`",`)
}

func TestInstall_MissingLockTouchesNothing(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	err := project.Install(context.Background(), app.InstallOptions{})

	require.ErrorIs(t, err, domain.ErrMissingLock)
	assert.NoDirExists(t, filepath.Join(f.dir, ".venv"))
}

func TestInstall(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()
	writeFile(t, paths.Lock, "requests==2.25.0\n")
	writeFile(t, paths.SetupPy, "")
	f.expectVenvBinaries(paths)

	ctx := context.Background()
	gomock.InOrder(
		f.env.EXPECT().Ensure(ctx, paths, info, domain.ProjectSettings{}).Return(nil),
		f.runner.EXPECT().Run(ctx, gomock.Cond(func(cmd domain.Command) bool {
			return assert.ObjectsAreEqual([]string{"-m", "pip", "install", "--requirement", "requirements.lock"}, cmd.Args)
		})).Return(nil),
		f.env.EXPECT().Expect(paths).Return(nil),
		f.runner.EXPECT().Run(ctx, gomock.Cond(func(cmd domain.Command) bool {
			return assert.ObjectsAreEqual([]string{"setup.py", "develop", "--no-deps"}, cmd.Args)
		})).Return(nil),
		f.digester.EXPECT().DigestFile(paths.Lock).Return("00000000deadbeef", nil),
		f.store.EXPECT().Put(domain.InstallRecord{
			EnvName:     filepath.Join("dev", "3.9.7"),
			Interpreter: python,
			LockDigest:  "00000000deadbeef",
			InstalledAt: now,
		}).Return(nil),
	)

	require.NoError(t, project.Install(ctx, app.InstallOptions{}))
}

func TestInstall_NoDevelop(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()
	writeFile(t, paths.Lock, "requests==2.25.0\n")
	f.expectVenvBinaries(paths)

	ctx := context.Background()
	f.env.EXPECT().Ensure(ctx, paths, info, domain.ProjectSettings{}).Return(nil)
	f.runner.EXPECT().Run(ctx, gomock.Any()).Return(nil).Times(1)
	f.digester.EXPECT().DigestFile(paths.Lock).Return("00000000deadbeef", nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, project.Install(ctx, app.InstallOptions{NoDevelop: true}))
}

func TestRun_MissingEnvironmentSpawnsNothing(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	f.env.EXPECT().Expect(project.Paths()).Return(missingEnv(project.Paths()))

	err := project.Run(context.Background(), []string{"pytest"})

	require.ErrorIs(t, err, domain.ErrMissingEnvironment)
}

func TestRun_NoCommand(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	err := project.Run(context.Background(), nil)

	require.ErrorIs(t, err, domain.ErrNoCommand)
}

func TestRun_ForwardsExitCode(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()
	binDir := filepath.Join(paths.Venv, "bin")
	f.expectVenvBinaries(paths)

	ctx := context.Background()
	f.env.EXPECT().Expect(paths).Return(nil)
	f.envFiles.EXPECT().Load(filepath.Join(f.dir, ".env")).Return([]string{"DEBUG=1"}, nil)
	f.runner.EXPECT().Run(ctx, domain.Command{
		Program: filepath.Join(binDir, "pytest"),
		Args:    []string{"-x", "tests"},
		Dir:     f.dir,
		Env:     []string{"DEBUG=1", "PATH=" + binDir, "VIRTUAL_ENV=" + paths.Venv},
	}).Return(zerr.With(zerr.Wrap(domain.ErrExternalCommandFailed, "pytest"), domain.ExitCodeKey, 3))

	err := project.Run(ctx, []string{"pytest", "-x", "tests"})

	require.ErrorIs(t, err, domain.ErrRunFailed)
	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestShow_MissingEnvironment(t *testing.T) {
	tests := []struct {
		name string
		call func(*app.Project) error
	}{
		{"deps", func(p *app.Project) error { return p.ShowDeps(context.Background()) }},
		{"outdated", func(p *app.Project) error { return p.ShowOutdated(context.Background()) }},
		{"bin path", func(p *app.Project) error {
			_, err := p.ShowBinPath()
			return err
		}},
		{"upgrade pip", func(p *app.Project) error { return p.UpgradePip(context.Background()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			project := f.open(t, domain.ProjectSettings{})
			f.env.EXPECT().Expect(project.Paths()).Return(missingEnv(project.Paths()))

			require.ErrorIs(t, tt.call(project), domain.ErrMissingEnvironment)
		})
	}
}

func TestShowPaths(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()
	f.expectVenvBinaries(paths)
	f.env.EXPECT().Expect(paths).Return(nil)

	assert.Equal(t, paths.Venv, project.ShowVenvPath())

	bin, err := project.ShowBinPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(paths.Venv, "bin"), bin)
}

func TestShowOutdated(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()
	f.expectVenvBinaries(paths)
	f.env.EXPECT().Expect(paths).Return(nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Cond(func(cmd domain.Command) bool {
		return assert.ObjectsAreEqual([]string{"-m", "pip", "list", "--outdated", "--format", "columns"}, cmd.Args)
	})).Return(nil)

	require.NoError(t, project.ShowOutdated(context.Background()))
}

func TestDevelop_MissingSetupPy(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	err := project.Develop(context.Background())

	require.ErrorIs(t, err, domain.ErrMissingSetupDescriptor)
}

func TestClean(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{Production: true})
	paths := project.Paths()
	writeFile(t, paths.Lock, "requests==2.25.0\n")

	f.env.EXPECT().Clean(paths).Return(nil)
	f.store.EXPECT().Delete(filepath.Join("prod", "3.9.7")).Return(nil)

	require.NoError(t, project.Clean())
	assert.FileExists(t, paths.Lock)
}

func TestBump(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})
	paths := project.Paths()

	f.locks.EXPECT().Read(paths.Lock).Return(&domain.Lockfile{
		Dependencies: []domain.Dependency{{Name: "requests", Version: "2.25.0"}},
	}, nil)
	f.locks.EXPECT().Write(paths.Lock, &domain.Lockfile{
		Metadata: domain.Metadata{
			ToolVersion:    "1.0.0",
			PythonVersion:  "3.9.7",
			PythonPlatform: "Linux-x86_64",
			Mode:           domain.ModeDevelopment,
		},
		Dependencies: []domain.Dependency{{Name: "requests", Version: "2.31.0"}},
	}).Return(nil)

	require.NoError(t, project.Bump("requests", "2.31.0", false))
}

func TestTidy_ActiveEnvironment(t *testing.T) {
	f := newFixture(t)
	project := f.open(t, domain.ProjectSettings{})

	err := project.Tidy(context.Background(), "/somewhere/venv")

	require.ErrorIs(t, err, domain.ErrActiveEnvironmentConflict)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		setupPy bool
		lock    bool
		venv    bool
		record  *domain.InstallRecord
		digest  string
		want    domain.ProjectState
		inSync  bool
	}{
		{name: "empty", want: domain.StateNoDescriptor},
		{name: "descriptor only", setupPy: true, want: domain.StateDescriptorOnly},
		{name: "venv", setupPy: true, venv: true, want: domain.StateEnvironmentReady},
		{
			name: "locked in sync", setupPy: true, lock: true, venv: true,
			record: &domain.InstallRecord{LockDigest: "abc"}, digest: "abc",
			want: domain.StateLocked, inSync: true,
		},
		{
			name: "locked stale", setupPy: true, lock: true, venv: true,
			record: &domain.InstallRecord{LockDigest: "abc"}, digest: "def",
			want: domain.StateLocked,
		},
		{name: "locked never installed", lock: true, want: domain.StateLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			project := f.open(t, domain.ProjectSettings{})
			paths := project.Paths()
			if tt.setupPy {
				writeFile(t, paths.SetupPy, "")
			}
			if tt.lock {
				writeFile(t, paths.Lock, "")
			}
			f.env.EXPECT().Exists(paths).Return(tt.venv)
			f.store.EXPECT().Get(filepath.Join("dev", "3.9.7")).Return(tt.record, nil)
			if tt.digest != "" {
				f.digester.EXPECT().DigestFile(paths.Lock).Return(tt.digest, nil)
			}

			status, err := project.Status()

			require.NoError(t, err)
			assert.Equal(t, tt.want, status.State)
			assert.Equal(t, tt.venv, status.HasVenv)
			assert.Equal(t, tt.lock, status.HasLock)
			assert.Equal(t, tt.inSync, status.InSync)
			assert.Equal(t, tt.record, status.Installed)
		})
	}
}
