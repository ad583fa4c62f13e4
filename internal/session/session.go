// Package session holds the admin bearer token between commands.
package session

import "sync"

// TokenKey is the well-known key the token is stored under.
const TokenKey = "adminToken"

// Store holds at most one bearer token. The REST client reads it before every
// request; it never validates the token itself.
type Store interface {
	// SetToken overwrites any previous token.
	SetToken(token string) error
	// Token reports the current token, if any. It has no side effects.
	Token() (string, bool)
	Clear() error
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
