package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateResolve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a, err := store.Create(ctx, 1)
	require.NoError(t, err)
	b, err := store.Create(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestMemoryStoreRevoke(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Revoking again is a no-op.
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestMemoryStoreRevokeUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t1, _ := store.Create(ctx, 7)
	t2, _ := store.Create(ctx, 7)
	other, _ := store.Create(ctx, 8)

	require.NoError(t, store.RevokeUser(ctx, 7))

	_, err := store.Resolve(ctx, t1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Resolve(ctx, t2)
	assert.ErrorIs(t, err, ErrNotFound)

	userID, err := store.Resolve(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, uint(8), userID)
}

func TestMemoryStoreResolveUnknown(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Resolve(context.Background(), "sess_bogus")
	assert.ErrorIs(t, err, ErrNotFound)
}
