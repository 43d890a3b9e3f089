package ports

// Digester computes content digests of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestFile returns a hex digest of the file content.
	DigestFile(path string) (string, error)
}
