// Package session implements the durable client-side session store:
// user identity, avatars, language preference and the pending upgrade
// record, kept under string keys in a small KV port.
//
// The stored user record is a signed token; a record that fails the
// signature or shape check is treated as "no session", never as a fatal
// error.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// KV is the storage port of the session store. Implementations must be
// safe for concurrent use.
type KV interface {
	// Get returns the value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys returns all stored keys in unspecified order.
	Keys() ([]string, error)
}

// MemoryKV is an in-process KV, used in tests and as a fallback when no
// storage path is configured.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

// FileKV persists the key set as a single JSON file. Every mutation
// rewrites the file, which is acceptable for the handful of session keys
// this store holds.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileKV opens or creates the store file at path.
func NewFileKV(path string) (*FileKV, error) {
	const op = "session.NewFileKV"
	kv := &FileKV{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// A corrupt store file counts as an empty store.
		kv.data = make(map[string]string)
	}
	return kv, nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return f.flush()
}

func (f *FileKV) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (f *FileKV) flush() error {
	const op = "session.FileKV.flush"
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
