// Package localstore is the server-side stand-in for browser local storage:
// a small string key-value store with whole-value, last-write-wins
// semantics.
package localstore

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv"
)

type KV interface {
	// GetItem returns the stored value and whether the key exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// FileKV keeps one file per key inside dir. Writes are staged in a temp
// directory and renamed into place so readers never observe a partially
// written value.
type FileKV struct {
	d *diskv.Diskv
}

func NewFileKV(dir string) (*FileKV, error) {
	tmp := filepath.Join(dir, ".tmp")
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	return &FileKV{d: diskv.New(diskv.Options{
		BasePath:     dir,
		TempDir:      tmp,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1 << 20,
	})}, nil
}

// fileKey maps an arbitrary key onto a single safe file name.
func fileKey(key string) string {
	return url.QueryEscape(key) + ".json"
}

func (f *FileKV) GetItem(key string) (string, bool, error) {
	b, err := f.d.Read(fileKey(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return string(b), true, nil
}

func (f *FileKV) SetItem(key, value string) error {
	if err := f.d.Write(fileKey(key), []byte(value)); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (f *FileKV) RemoveItem(key string) error {
	err := f.d.Erase(fileKey(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// MemoryKV is a map-backed KV for tests and ephemeral deployments.
type MemoryKV struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: map[string]string{}}
}

func (m *MemoryKV) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryKV) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryKV) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
