package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and single-instance
// deployments. Values are copied on the way in and out so callers can mutate
// their principal without racing other requests.
type MemoryStore struct {
	mu         sync.RWMutex
	principals map[string]PrincipalUser
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{principals: make(map[string]PrincipalUser)}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*PrincipalUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.principals[token]
	if !ok {
		return nil, ErrNotFound
	}
	out := p
	out.Roles = append([]string(nil), p.Roles...)
	return &out, nil
}

func (s *MemoryStore) Put(ctx context.Context, token string, principal *PrincipalUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := *principal
	in.Roles = append([]string(nil), principal.Roles...)
	s.principals[token] = in
	return nil
}

// Delete removes the principal bound to token. Used by logout flows; the
// pipeline itself never deletes sessions.
func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.principals, token)
}
