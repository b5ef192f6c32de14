package ports

import "context"

// SessionStore maps opaque session identifiers to user ids. Implementations
// must expire entries server-side; callers never see raw storage errors as
// authentication decisions.
type SessionStore interface {
	// Create mints a new session for userID and returns its identifier.
	Create(ctx context.Context, userID string) (string, error)
	// Get resolves a session id to a user id, or domain.ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (string, error)
	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
