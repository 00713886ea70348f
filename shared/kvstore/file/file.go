// Package file provides a kvstore.Store backed by a single JSON file: one
// flat object of string keys to string values. This is the durable,
// device-local store the account directory and session live in.
//
// The file may be shared with other processes. Reads always go to disk so a
// write by another process is visible on the next Get; there is no
// cross-process locking, so concurrent read-modify-write sequences by two
// processes can lose one of the updates. Callers that layer structures on
// top of single keys (the account directory does) inherit that limitation.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/medinsure-ai/medinsure/shared/kvstore"
	"github.com/medinsure-ai/medinsure/shared/logger"
)

type Store struct {
	mu   sync.Mutex
	path string
}

var _ kvstore.Store = (*Store)(nil)

// New creates the store at path, creating parent directories as needed.
// A missing file means an empty store.
func New(path string) (*Store, error) {
	p := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{path: p}, nil
}

func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	v, ok := data[key]
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	data[key] = value
	return s.save(data)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.save(data)
}

// load reads the whole file. A missing file is an empty store; an unparsable
// file is treated the same way, logged once per read, so a corrupt store
// never crashes a caller.
func (s *Store) load() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn("failed to read store file, treating as empty", "path", s.path, "error", err)
		}
		return map[string]string{}
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Log.Warn("store file is not a valid JSON object, treating as empty", "path", s.path, "error", err)
		return map[string]string{}
	}
	if data == nil {
		return map[string]string{}
	}
	return data
}

// save writes the whole file via temp-file rename. One synchronous retry
// before the error reaches the caller.
func (s *Store) save(data map[string]string) error {
	err := s.write(data)
	if err == nil {
		return nil
	}
	logger.Log.Warn("store write failed, retrying once", "path", s.path, "error", err)
	if err := s.write(data); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

func (s *Store) write(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
