package app

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed templates/setup.py.tmpl
var setupPyTemplate string

var setupPy = template.Must(template.New(domain.SetupPyFileName).Parse(setupPyTemplate))

// InitOptions fills the generated setup.py.
type InitOptions struct {
	// Name defaults to the project directory name.
	Name string
	// Version defaults to "0.1.0".
	Version     string
	Description string
	Author      string
}

// InstallOptions configures Install.
type InstallOptions struct {
	// NoDevelop skips `setup.py develop` after the locked dependencies are installed.
	NoDevelop bool
}

// LockOptions adds an environment marker to the records a lock did not have yet.
type LockOptions struct {
	PythonVersion string
	SysPlatform   string
}

// Init writes a setup.py skeleton in the project directory.
func (p *Project) Init(opts InitOptions) error {
	if fileExists(p.paths.SetupPy) {
		return zerr.With(zerr.Wrap(domain.ErrSetupDescriptorExists, p.paths.SetupPy), "path", p.paths.SetupPy)
	}

	if opts.Name == "" {
		opts.Name = filepath.Base(p.paths.Project)
	}
	if opts.Version == "" {
		opts.Version = "0.1.0"
	}

	var buf bytes.Buffer
	if err := setupPy.Execute(&buf, opts); err != nil {
		return zerr.Wrap(err, "failed to render setup.py")
	}

	if err := os.WriteFile(p.paths.SetupPy, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write setup.py"), "path", p.paths.SetupPy)
	}

	p.app.logger.Info("Generated " + p.paths.SetupPy + ", edit it to declare your dependencies")
	return nil
}

// Install installs the locked dependencies into the virtualenv, creating it if
// needed, then runs `setup.py develop` unless disabled.
// Nothing is touched when the lock does not exist.
func (p *Project) Install(ctx context.Context, opts InstallOptions) error {
	if !fileExists(p.paths.Lock) {
		return zerr.With(zerr.Wrap(domain.ErrMissingLock, p.paths.Lock), "path", p.paths.Lock)
	}

	p.app.logger.Info("Preparing project for development")
	if err := p.app.env.Ensure(ctx, p.paths, p.info, p.settings); err != nil {
		return err
	}
	if err := p.app.pip.InstallRequirements(ctx, p.paths); err != nil {
		return err
	}
	if !opts.NoDevelop {
		if err := p.Develop(ctx); err != nil {
			return err
		}
	}

	return p.recordInstall()
}

// Lock installs the project from setup.py and writes the lock.
func (p *Project) Lock(ctx context.Context, opts LockOptions) error {
	p.app.logger.Info("Locking dependencies")
	return p.app.locker.Generate(ctx, p.paths, p.info, p.settings, domain.MarkerOptions(opts))
}

// Bump pins one dependency of the lock to a new version, or to a git reference.
func (p *Project) Bump(name, version string, git bool) error {
	return p.app.locker.Bump(p.paths.Lock, name, version, git, p.app.locker.Metadata(p.info, p.settings))
}

// Tidy removes the packages the project no longer needs from the lock.
// activeEnv is the virtualenv activated in the calling shell, if any.
func (p *Project) Tidy(ctx context.Context, activeEnv string) error {
	p.app.logger.Info("Cleaning up lock file")
	return p.app.locker.Tidy(ctx, p.paths, p.info, p.settings, activeEnv)
}

// Develop runs `setup.py develop --no-deps` in the virtualenv.
func (p *Project) Develop(ctx context.Context) error {
	if !fileExists(p.paths.SetupPy) {
		return zerr.With(zerr.Wrap(domain.ErrMissingSetupDescriptor, p.paths.SetupPy), "path", p.paths.SetupPy)
	}
	if err := p.app.env.Expect(p.paths); err != nil {
		return err
	}
	return p.app.pip.Develop(ctx, p.paths)
}

// UpgradePip upgrades pip in the existing virtualenv.
func (p *Project) UpgradePip(ctx context.Context) error {
	if err := p.app.env.Expect(p.paths); err != nil {
		return err
	}
	return p.app.pip.Upgrade(ctx, p.paths)
}

// Run runs a program from the virtualenv with its arguments.
//
// The child runs from the project directory with the virtualenv activated and
// the variables of the project's .env file set. A failing child yields an error
// carrying its exit code.
func (p *Project) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return domain.ErrNoCommand
	}
	if err := p.app.env.Expect(p.paths); err != nil {
		return err
	}

	program, err := p.app.env.ResolveBinary(p.paths, args[0])
	if err != nil {
		return err
	}

	dotEnv, err := p.app.envFiles.Load(filepath.Join(p.paths.Project, domain.DotEnvFileName))
	if err != nil {
		return err
	}

	env := append(dotEnv, domain.VenvEnv(p.paths.Venv, p.app.env.BinDir(p.paths))...)
	err = p.app.runner.Run(ctx, domain.Command{
		Program: program,
		Args:    args[1:],
		Dir:     p.paths.Project,
		Env:     env,
	})
	if code, ok := domain.ExitCode(err); ok {
		return zerr.With(zerr.Wrap(domain.ErrRunFailed, args[0]), domain.ExitCodeKey, code)
	}
	return err
}

// ShowDeps lists the packages installed in the virtualenv.
func (p *Project) ShowDeps(ctx context.Context) error {
	if err := p.app.env.Expect(p.paths); err != nil {
		return err
	}
	return p.app.pip.List(ctx, p.paths, false)
}

// ShowOutdated lists the installed packages that have a newer release.
func (p *Project) ShowOutdated(ctx context.Context) error {
	if err := p.app.env.Expect(p.paths); err != nil {
		return err
	}
	return p.app.pip.List(ctx, p.paths, true)
}

// ShowVenvPath returns the virtualenv path, whether it exists or not.
func (p *Project) ShowVenvPath() string {
	return p.paths.Venv
}

// ShowBinPath returns the directory holding the virtualenv executables.
func (p *Project) ShowBinPath() (string, error) {
	if err := p.app.env.Expect(p.paths); err != nil {
		return "", err
	}
	return p.app.env.BinDir(p.paths), nil
}

// Clean removes the virtualenv and forgets what was installed in it.
// The lock and setup.py are left untouched.
func (p *Project) Clean() error {
	if err := p.app.env.Clean(p.paths); err != nil {
		return err
	}

	store, err := p.app.openStore(p.paths.Project)
	if err != nil {
		return err
	}
	return store.Delete(p.envName())
}

// Status reports the lifecycle stage of the project and whether the
// virtualenv holds the current lock content.
func (p *Project) Status() (domain.Status, error) {
	status := domain.Status{
		Paths:   p.paths,
		HasVenv: p.app.env.Exists(p.paths),
		HasLock: fileExists(p.paths.Lock),
	}
	status.State = domain.ComputeState(fileExists(p.paths.SetupPy), status.HasVenv, status.HasLock)

	store, err := p.app.openStore(p.paths.Project)
	if err != nil {
		return domain.Status{}, err
	}
	record, err := store.Get(p.envName())
	if err != nil {
		return domain.Status{}, err
	}
	status.Installed = record

	if record != nil && status.HasVenv && status.HasLock {
		digest, err := p.app.digester.DigestFile(p.paths.Lock)
		if err != nil {
			return domain.Status{}, err
		}
		status.InSync = digest == record.LockDigest
	}

	return status, nil
}

func (p *Project) recordInstall() error {
	digest, err := p.app.digester.DigestFile(p.paths.Lock)
	if err != nil {
		return err
	}

	store, err := p.app.openStore(p.paths.Project)
	if err != nil {
		return err
	}

	return store.Put(domain.InstallRecord{
		EnvName:     p.envName(),
		Interpreter: p.info.Executable,
		LockDigest:  digest,
		InstalledAt: p.app.now().UTC(),
	})
}

func (p *Project) envName() string {
	return domain.EnvName(p.info.Version, p.settings)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
