// Package storage persists JSON documents under fixed storage keys.
//
// Each key maps to <dir>/<key>.json. A missing or unreadable document loads
// as "not found" so callers fall back to their empty collections.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// ErrInvalidKey is returned for keys that would escape the data directory.
var ErrInvalidKey = errors.New("invalid storage key")

// Store reads and writes documents in a directory.
type Store struct {
	Dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file backing key.
func (s *Store) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

// Load decodes the document stored under key into v, which must be a non-nil
// pointer. It reports false, without error, when the document does not exist
// or does not parse; v is left untouched in that case.
func (s *Store) Load(key string, v any) (bool, error) {
	path, err := s.Path(key)
	if err != nil {
		return false, err
	}
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return false, fmt.Errorf("load %s: target must be a non-nil pointer, got %T", key, v)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return false, nil
	}
	// Unmarshal can fill part of a value before failing, so decode into a
	// fresh one and publish it only on success.
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		return false, nil
	}
	target.Elem().Set(fresh.Elem())
	return true, nil
}

// Save writes v as indented JSON under key. The write goes through a
// temporary file in the same directory followed by a rename.
func (s *Store) Save(key string, v any) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// DefaultDir returns the per-user data directory for appName.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}
