package config

// File represents the structure of the pinenv configuration file.
type File struct {
	Env      map[string]EnvDTO `toml:"env" yaml:"env"`
	Settings SettingsDTO       `toml:"settings" yaml:"settings"`
}

// EnvDTO represents a named python interpreter.
type EnvDTO struct {
	Python string `toml:"python" yaml:"python"`
}

// SettingsDTO represents default project settings.
type SettingsDTO struct {
	Production         bool `toml:"production" yaml:"production"`
	SystemSitePackages bool `toml:"system_site_packages" yaml:"system_site_packages"`
}
