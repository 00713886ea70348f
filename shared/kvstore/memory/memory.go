// Package memory provides an in-memory kvstore.Store, used as the test fake
// and for single-run demos where persistence does not matter.
package memory

import (
	"sync"

	"github.com/medinsure-ai/medinsure/shared/kvstore"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ kvstore.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
