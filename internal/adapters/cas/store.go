// Package cas implements the install record store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// StateFileName is the store file, kept next to the virtualenvs it describes.
	StateFileName = ".pinenv-state.json"

	// stateVersion is bumped whenever the file layout changes.
	stateVersion = 1
)

// stateFile is the on-disk layout of the store.
type stateFile struct {
	Version int                             `json:"version"`
	Records map[string]domain.InstallRecord `json:"records"`
}

// Store implements ports.InstallStateStore using a JSON file keyed by
// virtualenv name. Records whose virtualenv is gone are dropped on load.
type Store struct {
	path    string
	venvDir string
	mu      sync.RWMutex
	records map[string]domain.InstallRecord
}

// StatePath returns the store file of a project.
func StatePath(project string) string {
	return filepath.Join(filepath.Clean(project), domain.VenvDirName, StateFileName)
}

// Open opens the store of a project.
func Open(project string) (*Store, error) {
	return NewStore(StatePath(project))
}

// NewStore creates a new Store backed by the file at the given path. Record
// names are resolved against the directory holding the file.
func NewStore(path string) (*Store, error) {
	path = filepath.Clean(path)
	s := &Store{
		path:    path,
		venvDir: filepath.Dir(path),
		records: make(map[string]domain.InstallRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}
	if state.Version != stateVersion {
		failure := zerr.Wrap(domain.ErrStoreReadFailed, "unsupported version "+strconv.Itoa(state.Version))
		return zerr.With(failure, "path", s.path)
	}

	for name, record := range state.Records {
		if s.venvExists(name) {
			s.records[name] = record
		}
	}
	return nil
}

func (s *Store) venvExists(envName string) bool {
	st, err := os.Stat(filepath.Join(s.venvDir, envName))
	return err == nil && st.IsDir()
}

// save writes the records to disk. Callers must hold mu.
func (s *Store) save() error {
	data, err := json.MarshalIndent(stateFile{Version: stateVersion, Records: s.records}, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	if err := os.MkdirAll(s.venvDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the install record for a virtualenv.
func (s *Store) Get(envName string) (*domain.InstallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[envName]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the install record. The record must name its virtualenv.
func (s *Store) Put(record domain.InstallRecord) error {
	if record.EnvName == "" {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, "record has no virtualenv name"), "path", s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.EnvName] = record
	return s.save()
}

// Delete forgets the install record for a virtualenv.
func (s *Store) Delete(envName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[envName]; !ok {
		return nil
	}
	delete(s.records, envName)
	return s.save()
}
