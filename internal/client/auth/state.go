// Package auth holds the in-memory session state for the client: the
// credentials container with its two mutations and read projections, and the
// wrapper that drops the session when the backend answers 401.
package auth

import (
	"encoding/json"
	"sync"

	"github.com/onemployment/client/internal/client/api"
)

// Store is the session state container. Exactly two configurations are
// reachable: empty (unauthenticated) or a full {token, user} pair; the
// mutations never leave one field set without the other.
type Store struct {
	mu    sync.RWMutex
	creds api.Credentials
}

// NewStore creates a container seeded with the given state, typically the
// result of session.BuildPreloadedState. A zero Credentials value starts
// the store unauthenticated.
func NewStore(preloaded api.Credentials) *Store {
	return &Store{creds: preloaded}
}

// SetCredentials replaces both token and user in one step.
func (s *Store) SetCredentials(c api.Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = c
}

// ClearCredentials resets the container to the unauthenticated state.
// Clearing an already-empty store is a no-op.
func (s *Store) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = api.Credentials{}
}

// Token returns the current session token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Token
}

// CurrentUser returns the raw user payload, or nil when unauthenticated.
func (s *Store) CurrentUser() json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.User
}

// Credentials returns a copy of the current pair.
func (s *Store) Credentials() api.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// IsAuthenticated reports whether both token and user are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.Token != "" && len(s.creds.User) > 0
}
