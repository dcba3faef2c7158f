package session_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ideashelf/backend/internal/session"
)

func setupStore(t *testing.T, ttl time.Duration) (*session.RedisStore, *miniredis.Miniredis) {
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	store, err := session.NewRedisStore(fmt.Sprintf("redis://%s", server.Addr()), ttl)
	if err != nil {
		t.Fatalf("Failed to create session store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, server
}

func TestCreateAndGet(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokensAreUnique(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	assert.NoError(t, err)
	second, err := store.Create(ctx, 1)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGetUnknownToken(t *testing.T) {
	store, _ := setupStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestDestroy(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	assert.NoError(t, err)

	assert.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Destroying again is a no-op
	assert.NoError(t, store.Destroy(ctx, token))
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	store, server := setupStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	assert.NoError(t, err)

	server.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
