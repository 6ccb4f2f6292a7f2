package service

import "github.com/google/uuid"

// SessionManager maintains the process-wide table of active sessions.
// Tokens are opaque, unguessable strings; sessions expire after a
// configurable TTL with sliding refresh on each resolve.
type SessionManager interface {
	// Start creates a session for the user and returns its token.
	Start(userID uuid.UUID) (string, error)

	// Resolve maps a token to the owning user ID. A missing, unknown, or
	// expired token fails open to anonymous (ok == false), never an error.
	// A successful resolve refreshes the session's expiry.
	Resolve(token string) (userID uuid.UUID, ok bool)

	// End invalidates the session. Ending an unknown or already-ended
	// session is a no-op.
	End(token string)
}
