// Package session implements the SessionManager on top of a process-wide
// in-memory token table. Tokens are opaque 256-bit random values; expiry is
// absolute with sliding refresh on each resolve.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"sync"
	"time"

	"cookbook/config"
	"cookbook/internal/domain/service"
	"cookbook/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenBytes = 32

type session struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// memoryStore holds all active sessions. A single mutex guards the table;
// per-token expiry updates must be atomic with respect to concurrent
// requests presenting the same token.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]session
	ttl      time.Duration
	now      func() time.Time
}

func newMemoryStore(ttl time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		now:      now,
	}
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the in-memory session manager and registers a janitor
// goroutine on the application lifecycle to sweep expired sessions.
func New(params Params) service.SessionManager {
	store := newMemoryStore(params.Config.Session.TTL, time.Now)

	janitorCtx, cancelJanitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.janitor(janitorCtx, params.Logger, params.Config.Session.CleanupInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelJanitor()

			return nil
		},
	})

	return store
}

// Start creates a session for the user and returns its token.
func (s *memoryStore) Start(userID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = session{
		userID:    userID,
		expiresAt: s.now().Add(s.ttl),
	}

	return token, nil
}

// Resolve maps a token to its user and refreshes the expiry. Missing,
// unknown, or expired tokens fail open to anonymous.
func (s *memoryStore) Resolve(token string) (uuid.UUID, bool) {
	if token == "" {
		return uuid.Nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, false
	}

	now := s.now()
	if now.After(sess.expiresAt) {
		delete(s.sessions, token)

		return uuid.Nil, false
	}

	// Sliding refresh on each authenticated request.
	sess.expiresAt = now.Add(s.ttl)
	s.sessions[token] = sess

	return sess.userID, true
}

// End invalidates the session. Idempotent: unknown tokens are a no-op.
func (s *memoryStore) End(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// sweep removes all expired sessions and returns how many were dropped.
func (s *memoryStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed
}

func (s *memoryStore) janitor(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 && logger != nil {
				logger.Debug("Swept expired sessions", slog.Int("removed", removed))
			}
		}
	}
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
