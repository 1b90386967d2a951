package session_adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndResolveSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, 7, adminID)
}

func TestUnknownTokenIsRejected(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, ok := store.Get("not-a-real-token")
	assert.False(t, ok)
}

func TestDeleteInvalidatesImmediately(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(1)
	require.NoError(t, err)

	store.Delete(token)

	_, ok := store.Get(token)
	assert.False(t, ok)

	// Deleting again is a no-op.
	store.Delete(token)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	token, err := store.Create(1)
	require.NoError(t, err)

	// Advance the clock past the TTL.
	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, ok := store.Get(token)
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(i)
		require.NoError(t, err)
		require.False(t, seen[token])
		seen[token] = true
	}
}
