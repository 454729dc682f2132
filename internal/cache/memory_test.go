package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGet_NotFound(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemory[string](time.Minute, 100)
	require.NoError(t, err)

	value, found, err := store.Get(ctx, "nonexistent")

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestMemorySetAndGet_Success(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemory[string](time.Minute, 100)
	require.NoError(t, err)

	err = store.Set(ctx, "test-key", "<svg/>")
	require.NoError(t, err)

	value, found, err := store.Get(ctx, "test-key")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "<svg/>", value)
}

func TestMemoryInvalidate_RemovesValue(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemory[string](time.Minute, 100)
	require.NoError(t, err)

	err = store.Set(ctx, "test-key", "<svg/>")
	require.NoError(t, err)

	err = store.Invalidate(ctx, "test-key")
	require.NoError(t, err)

	_, found, err := store.Get(ctx, "test-key")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	// Use very short TTL for testing
	store, err := NewMemory[string](100*time.Millisecond, 100)
	require.NoError(t, err)

	err = store.Set(ctx, "test-key", "<svg/>")
	require.NoError(t, err)

	// Verify value is present immediately
	_, found, err := store.Get(ctx, "test-key")
	assert.NoError(t, err)
	assert.True(t, found)

	// Wait for TTL to expire
	time.Sleep(150 * time.Millisecond)

	// Expired entries are treated as absent
	_, found, err = store.Get(ctx, "test-key")
	assert.NoError(t, err)
	assert.False(t, found)
}
