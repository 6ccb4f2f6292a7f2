package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(ttl time.Duration) (*memoryStore, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}

	return newMemoryStore(ttl, clock.now), clock
}

func TestMemoryStore_StartAndResolve(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	userID := uuid.New()

	token, err := store.Start(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, ok := store.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	userID := uuid.New()

	first, err := store.Start(userID)
	require.NoError(t, err)
	second, err := store.Start(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMemoryStore_UnknownTokenIsAnonymous(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	resolved, ok := store.Resolve("no-such-token")
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, resolved)

	// Empty token is anonymous too, not an error.
	_, ok = store.Resolve("")
	assert.False(t, ok)
}

func TestMemoryStore_ExpiredTokenIsAnonymous(t *testing.T) {
	store, clock := newTestStore(time.Hour)

	token, err := store.Start(uuid.New())
	require.NoError(t, err)

	clock.advance(time.Hour + time.Second)

	_, ok := store.Resolve(token)
	assert.False(t, ok)

	// The expired entry is dropped; resolving again still fails.
	_, ok = store.Resolve(token)
	assert.False(t, ok)
}

func TestMemoryStore_SlidingRefreshExtendsExpiry(t *testing.T) {
	store, clock := newTestStore(time.Hour)
	userID := uuid.New()

	token, err := store.Start(userID)
	require.NoError(t, err)

	// Touch the session just before it expires; the resolve refreshes it.
	clock.advance(59 * time.Minute)
	_, ok := store.Resolve(token)
	require.True(t, ok)

	// Without the refresh the session would have died at the original
	// expiry; with it, another 59 minutes is still within the window.
	clock.advance(59 * time.Minute)
	resolved, ok := store.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestMemoryStore_EndIsIdempotent(t *testing.T) {
	store, _ := newTestStore(time.Hour)

	token, err := store.Start(uuid.New())
	require.NoError(t, err)

	store.End(token)
	_, ok := store.Resolve(token)
	assert.False(t, ok)

	// Ending an already-ended or unknown session is not an error.
	store.End(token)
	store.End("never-existed")
}

func TestMemoryStore_SweepRemovesOnlyExpired(t *testing.T) {
	store, clock := newTestStore(time.Hour)

	expired, err := store.Start(uuid.New())
	require.NoError(t, err)

	clock.advance(2 * time.Hour)

	live, err := store.Start(uuid.New())
	require.NoError(t, err)

	removed := store.sweep()
	assert.Equal(t, 1, removed)

	_, ok := store.Resolve(expired)
	assert.False(t, ok)
	_, ok = store.Resolve(live)
	assert.True(t, ok)
}

func TestMemoryStore_SessionsAreIndependent(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	alice := uuid.New()
	bob := uuid.New()

	aliceToken, err := store.Start(alice)
	require.NoError(t, err)
	bobToken, err := store.Start(bob)
	require.NoError(t, err)

	store.End(aliceToken)

	_, ok := store.Resolve(aliceToken)
	assert.False(t, ok)

	resolved, ok := store.Resolve(bobToken)
	assert.True(t, ok)
	assert.Equal(t, bob, resolved)
}
