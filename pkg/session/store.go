package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no principal is bound to a token.
var ErrNotFound = errors.New("session: principal not found")

// Store is the session collaborator contract. Implementations are expected
// to be shared across service instances (the reference deployment keeps
// sessions in a distributed cache); per-token atomicity is the store's
// responsibility and last-writer-wins is acceptable for LastAccess.
type Store interface {
	// Get returns the principal bound to token, or ErrNotFound.
	Get(ctx context.Context, token string) (*PrincipalUser, error)
	// Put binds the principal to token, replacing any previous value.
	Put(ctx context.Context, token string, principal *PrincipalUser) error
}
