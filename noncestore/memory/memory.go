// Package memory provides an in-memory nonce store keyed by API key. It is
// suited to single-process deployments and tests; use redisnonce when the
// expected nonce must be shared across processes.
package memory

import (
	"context"
	"sync"
)

// Store tracks the expected nonce per API key behind a mutex. The zero
// value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	nonces map[string]uint64
}

// New creates an empty in-memory nonce store.
func New() *Store {
	return &Store{nonces: make(map[string]uint64)}
}

// Lookup implements noncestore.Lookup.
func (s *Store) Lookup(ctx context.Context, apiKey string) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nonces[apiKey]
	return n, ok
}

// Put registers an API key with the nonce its next request must present.
func (s *Store) Put(apiKey string, nonce uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonces[apiKey] = nonce
}

// Advance bumps the expected nonce after a successful validation so the
// just-used signature can no longer be replayed. Advancing an unknown key
// is a no-op and returns false.
func (s *Store) Advance(apiKey string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nonces[apiKey]
	if !ok {
		return 0, false
	}
	n++
	s.nonces[apiKey] = n
	return n, true
}

// Delete revokes an API key.
func (s *Store) Delete(apiKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nonces, apiKey)
}
