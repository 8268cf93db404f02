package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore reads and writes JSON collections under a single data directory.
// Every read goes to disk so each request observes the latest persisted
// state; writes are atomic (temp file + rename). Serialization of
// read-modify-write sequences is the caller's responsibility.
type FileStore struct {
	dir string
}

// NewFileStore ensures the data directory exists and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Exists reports whether the named collection file is present.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// Load decodes the named collection into v. A missing file leaves v untouched
// and is not an error; the collection simply has no records yet.
func (s *FileStore) Load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("filestore: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("filestore: decode %s: %w", name, err)
	}
	return nil
}

// Save encodes v and atomically replaces the named collection file.
func (s *FileStore) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", name, err)
	}
	return nil
}
