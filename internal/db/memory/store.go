// Package memory implements db.Store as a process-local map. It is the default
// driver and backs the CLI and the tests.
package memory

import (
	"context"
	"maps"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/kailas-cloud/huddle/internal/db"
)

var _ db.Store = (*Store)(nil)

// Store is a mutex-guarded hash store. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
	closed bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{hashes: make(map[string]map[string]string)}
}

// Ping fails only after Close.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &db.Error{Op: db.OpPing, Err: db.ErrClosed}
	}
	return nil
}

// Close marks the store closed; later calls fail with db.ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// WaitForReady returns immediately unless the store is closed.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// HSet merges fields into the hash at key.
func (s *Store) HSet(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &db.Error{Op: db.OpHSet, Err: db.ErrClosed}
	}
	if len(fields) == 0 {
		return nil
	}
	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]string, len(fields))
		s.hashes[key] = h
	}
	maps.Copy(h, fields)
	return nil
}

// HGetAll returns a copy of the hash at key, or an empty map.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &db.Error{Op: db.OpHGetAll, Err: db.ErrClosed}
	}
	return maps.Clone(s.hashes[key]), nil
}

// HGetAllMulti returns copies of several hashes in key order.
func (s *Store) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &db.Error{Op: db.OpHGetAll, Err: db.ErrClosed}
	}
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i] = maps.Clone(s.hashes[k])
		if out[i] == nil {
			out[i] = map[string]string{}
		}
	}
	return out, nil
}

// Del removes the key. Deleting a missing key is not an error.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &db.Error{Op: db.OpDel, Err: db.ErrClosed}
	}
	delete(s.hashes, key)
	return nil
}

// Exists reports whether key holds a hash.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, &db.Error{Op: db.OpExists, Err: db.ErrClosed}
	}
	_, ok := s.hashes[key]
	return ok, nil
}

// Scan returns the keys matching a glob pattern, sorted.
// Patterns follow path.Match, so '*' does not cross '/'.
func (s *Store) Scan(_ context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, &db.Error{Op: db.OpScan, Err: db.ErrClosed}
	}
	var keys []string
	for k := range s.hashes {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		if ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}
