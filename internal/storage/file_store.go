package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
	log *logger.Logger
}

// NewFileStore creates dir if needed. log may be nil.
func NewFileStore(dir string, log *logger.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, palerrors.NewStorageError("", "open", errors.New("store directory is required"))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, palerrors.NewStorageError("", "open", fmt.Errorf("failed to create store directory: %w", err))
	}
	return &FileStore{dir: dir, log: log.WithComponent("storage")}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// path maps a key to a file name that cannot escape the directory.
func (s *FileStore) path(key string) string {
	name := url.PathEscape(key)
	if name == "" || name == "." || name == ".." {
		name = strings.Repeat("%2E", len(name)) + "%00"
	}
	return filepath.Join(s.dir, name)
}

// Load implements Store.
func (s *FileStore) Load(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, palerrors.NewStorageError(key, "load", err)
	}
	return string(data), true, nil
}

// Save implements Store. The value is written to a temporary file and
// renamed into place.
func (s *FileStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmpPath := target + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0o644); err != nil {
		return palerrors.NewStorageError(key, "save", fmt.Errorf("failed to write temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return palerrors.NewStorageError(key, "save", fmt.Errorf("failed to rename temporary file: %w", err))
	}

	s.log.WithFields(map[string]any{"key": key, "bytes": len(value)}).Debug("stored entry")
	return nil
}

// Remove implements Store.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return palerrors.NewStorageError(key, "remove", err)
	}

	s.log.WithFields(map[string]any{"key": key}).Debug("removed entry")
	return nil
}
