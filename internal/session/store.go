// Package session resolves opaque bearer tokens to user ids. Tokens are
// random, revocable, and live only in the configured store: the in-memory
// store is cleared on restart, the Redis store survives it.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Store is the pluggable token store. The server wires Redis when configured
// and falls back to memory otherwise.
type Store interface {
	// Create mints a new token bound to userID.
	Create(ctx context.Context, userID uint) (string, error)
	// Resolve returns the user id a token is bound to, or ErrNotFound.
	Resolve(ctx context.Context, token string) (uint, error)
	// Revoke invalidates a single token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
	// RevokeUser invalidates every token bound to userID.
	RevokeUser(ctx context.Context, userID uint) error
}

func newToken() string {
	return "sess_" + uuid.NewString()
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

func (s *MemoryStore) Create(ctx context.Context, userID uint) (string, error) {
	token := newToken()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (uint, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	return userID, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) RevokeUser(ctx context.Context, userID uint) error {
	s.mu.Lock()
	for token, id := range s.sessions {
		if id == userID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}
