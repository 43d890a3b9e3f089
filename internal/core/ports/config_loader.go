package ports

import "go.trai.ch/pinenv/internal/core/domain"

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path selects the default
	// location, where a missing file yields an empty configuration.
	Load(path string) (*domain.Config, error)
}
