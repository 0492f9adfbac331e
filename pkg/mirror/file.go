package mirror

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Mirror backed by one JSON file per key under a directory.
// There is no schema versioning: a blob that no longer parses reads as
// absent, exactly like a missing file.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile creates the directory when needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Load(key string, out any) bool {
	f.mu.Lock()
	blob, err := os.ReadFile(f.path(key))
	f.mu.Unlock()
	if err != nil {
		return false
	}
	return json.Unmarshal(blob, out) == nil
}

func (f *File) Store(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror blob %s: %w", key, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(f.path(key), blob, 0o644); err != nil {
		return fmt.Errorf("failed to write mirror blob %s: %w", key, err)
	}
	return nil
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove mirror blob %s: %w", key, err)
	}
	return nil
}
