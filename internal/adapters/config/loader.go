// Package config provides the configuration loader for pinenv.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a TOML or YAML file.
type FileConfigLoader struct {
	logger ports.Logger
	// DefaultPath is used when Load is called with an empty path.
	DefaultPath string
}

// NewFileConfigLoader creates a loader whose default is the user config location.
func NewFileConfigLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		logger:      logger,
		DefaultPath: domain.DefaultConfigPath(),
	}
}

// Load reads the configuration at path.
// With an empty path the default location is used and a missing file is not an error.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = l.DefaultPath
	}
	if path == "" {
		return &domain.Config{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &domain.Config{}, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	file, err := l.decode(path, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	l.logger.Debug("loaded config from " + path)
	return file.toDomain(), nil
}

func (l *FileConfigLoader) decode(path string, data []byte) (*File, error) {
	var file File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, err
		}
		for _, key := range md.Undecoded() {
			l.logger.Warn("ignoring unknown config key " + key.String())
		}
	}

	return &file, nil
}

func (f *File) toDomain() *domain.Config {
	cfg := &domain.Config{
		Envs: make(map[string]domain.PythonEnv, len(f.Env)),
		Settings: domain.ProjectSettings{
			Production:         f.Settings.Production,
			SystemSitePackages: f.Settings.SystemSitePackages,
		},
	}
	for name, env := range f.Env {
		cfg.Envs[name] = domain.PythonEnv{Python: env.Python}
	}
	return cfg
}
