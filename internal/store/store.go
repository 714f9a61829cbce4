// Package store implements the local persistent key-value store backing the
// file-based repository layer. Each key maps to one JSON document on disk
// under a namespaced file name.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store is a JSON-per-key persistent store. A failed read is reported as
// "not initialized" rather than an error; callers start from an empty
// collection in that case.
type Store struct {
	dir    string
	prefix string
	mu     sync.Mutex
}

// New creates a store rooted at dir. Keys are namespaced with prefix so
// several stores can share a directory.
func New(dir, prefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, prefix: prefix}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, s.prefix+"_"+key+".json")
}

// Get unmarshals the value stored under key into dest. It returns false when
// the key has never been written or the stored document cannot be decoded;
// the failure is logged and dest is left untouched.
func (s *Store) Get(key string, dest interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: failed to read key %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("store: failed to decode key %q: %v", key, err)
		return false
	}
	return true
}

// Set marshals value and persists it under key, replacing any previous
// document atomically. It returns false on failure, which is logged.
func (s *Store) Set(key string, value interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: failed to encode key %q: %v", key, err)
		return false
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("store: failed to write key %q: %v", key, err)
		return false
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		log.Printf("store: failed to replace key %q: %v", key, err)
		return false
	}
	return true
}

// Delete removes the document stored under key. Deleting a missing key is a
// no-op.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("store: failed to delete key %q: %v", key, err)
		return false
	}
	return true
}
