package ports

// EnvFileLoader reads KEY=VALUE files such as .env.
//
//go:generate go run go.uber.org/mock/mockgen -source=env_loader.go -destination=mocks/mock_env_loader.go -package=mocks
type EnvFileLoader interface {
	// Load returns the variables defined in the file at path as KEY=VALUE entries.
	// A missing file yields no entries and no error.
	Load(path string) ([]string, error)
}
