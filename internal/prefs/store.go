package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Store is a synchronous string key-value capability.
// Get reports ok=false for an absent key; a non-nil error means the
// backing storage could not be used at all.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	Keys() ([]string, error)
}

// Memory is an in-process Store. The zero value is not usable; call NewMemory.
type Memory struct {
	data map[string]string
	// Err, when set, is returned by every operation.
	Err error
}

func NewMemory() *Memory { return &Memory{data: map[string]string{}} }

func (m *Memory) Get(key string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return sortedKeys(m.data), nil
}

// File keeps the whole key space as one JSON object on disk.
// Every mutation rewrites the file before returning.
type File struct {
	path string
	data map[string]string
}

// OpenFile loads path into memory. A missing file is an empty store and
// input that is not a JSON object is an error. Entries whose value is not
// a string are dropped with a log line so reads fall back to defaults.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, data: map[string]string{}}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(raw) == 0 {
		return f, nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	for k, v := range entries {
		var s string
		if err := json.Unmarshal(v, &s); err != nil || string(v) == "null" {
			log.Printf("prefs: skipping %s in %s: not a string", k, path)
			continue
		}
		f.data[k] = s
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	prev, had := f.data[key]
	f.data[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *File) Remove(key string) error {
	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.flush(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

func (f *File) Keys() ([]string, error) { return sortedKeys(f.data), nil }

// flush writes through a temp file in the same directory and renames it
// over the store so a crash never leaves a half-written file.
func (f *File) flush() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
