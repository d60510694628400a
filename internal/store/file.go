package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SchemaVersion is the current storage document version.
const SchemaVersion = 1

// document is the JSON layout of a FileStorage file.
type document struct {
	SchemaVersion int               `json:"schema_version"`
	Revision      string            `json:"revision,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Items         map[string]string `json:"items"`
}

// FileStorage is a Storage backed by a single JSON document.
// The whole document is held in memory and rewritten on every change.
type FileStorage struct {
	mu     sync.RWMutex
	path   string
	doc    document
	closed bool
}

// OpenFileStorage opens the document at path, creating parent directories.
// A missing file is an empty storage; it is created on the first write.
func OpenFileStorage(path string) (*FileStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	fs := &FileStorage{path: path}
	if err := fs.Reload(); err != nil {
		return nil, err
	}
	return fs, nil
}

// Path returns the document path.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Reload re-reads the document from disk, replacing the in-memory copy.
func (fs *FileStorage) Reload() error {
	doc, err := readDocument(fs.path)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	fs.doc = doc
	fs.mu.Unlock()
	return nil
}

func readDocument(path string) (document, error) {
	doc := document{SchemaVersion: SchemaVersion, Items: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.SchemaVersion > SchemaVersion {
		return doc, fmt.Errorf("unsupported schema version %d (max: %d)",
			doc.SchemaVersion, SchemaVersion)
	}
	if doc.Items == nil {
		doc.Items = make(map[string]string)
	}
	return doc, nil
}

// Get implements Storage.
func (fs *FileStorage) Get(key string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	v, ok := fs.doc.Items[key]
	return v, ok
}

// Set implements Storage.
func (fs *FileStorage) Set(key, value string) error {
	return fs.update(func(items map[string]string) {
		items[key] = value
	})
}

// Remove implements Storage.
func (fs *FileStorage) Remove(key string) error {
	fs.mu.RLock()
	_, present := fs.doc.Items[key]
	fs.mu.RUnlock()
	if !present {
		return nil
	}

	return fs.update(func(items map[string]string) {
		delete(items, key)
	})
}

// Revision returns the id of the last write, empty if never written.
func (fs *FileStorage) Revision() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.doc.Revision
}

// UpdatedAt returns the time of the last write, zero if never written.
func (fs *FileStorage) UpdatedAt() time.Time {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.doc.UpdatedAt
}

// Items returns a copy of everything stored.
func (fs *FileStorage) Items() map[string]string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return maps.Clone(fs.doc.Items)
}

// Close marks the storage closed. Further writes fail with ErrStorageClosed.
func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.closed = true
	return nil
}

// update applies fn to a copy of the items and writes the result.
// The in-memory document only changes once the write succeeded.
func (fs *FileStorage) update(fn func(items map[string]string)) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.closed {
		return ErrStorageClosed
	}

	next := document{
		SchemaVersion: SchemaVersion,
		Revision:      ulid.Make().String(),
		UpdatedAt:     time.Now().UTC(),
		Items:         maps.Clone(fs.doc.Items),
	}
	if next.Items == nil {
		next.Items = make(map[string]string)
	}
	fn(next.Items)

	if err := writeDocument(fs.path, next); err != nil {
		return err
	}
	fs.doc = next
	return nil
}

// writeDocument writes doc to a temp file and renames it over path.
func writeDocument(path string, doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
