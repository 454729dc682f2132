package github

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticResolver(login string, err error) OwnerResolver {
	return func(context.Context, Credential) (string, error) {
		return login, err
	}
}

func TestNewPool_NoTokens(t *testing.T) {
	_, err := NewPool(nil, staticResolver("", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one token")
}

func TestAcquire_SingleToken(t *testing.T) {
	pool, err := NewPool([]string{"only"}, staticResolver("", nil))
	require.NoError(t, err)

	for range 5 {
		assert.Equal(t, "only", pool.Acquire().Token())
	}
	assert.True(t, pool.SingleToken())
}

func TestAcquire_RotatesBetweenTokens(t *testing.T) {
	pool, err := NewPool([]string{"a", "b"}, staticResolver("", nil))
	require.NoError(t, err)
	assert.False(t, pool.SingleToken())

	seen := map[string]int{}
	for range 10 {
		seen[pool.Acquire().Token()]++
	}

	assert.Equal(t, 5, seen["a"])
	assert.Equal(t, 5, seen["b"])
}

func TestOwner_ResolvedOnce(t *testing.T) {
	calls := 0
	pool, err := NewPool([]string{"only"}, func(context.Context, Credential) (string, error) {
		calls++
		return "octocat", nil
	})
	require.NoError(t, err)

	for range 3 {
		owner, err := pool.Owner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "octocat", owner)
	}

	assert.Equal(t, 1, calls, "owner resolution must happen exactly once per process")
}

func TestOwner_FailureIsNotRetried(t *testing.T) {
	calls := 0
	resolveErr := errors.New("viewer query failed")
	pool, err := NewPool([]string{"only"}, func(context.Context, Credential) (string, error) {
		calls++
		return "", resolveErr
	})
	require.NoError(t, err)

	for range 3 {
		_, err := pool.Owner(context.Background())
		assert.ErrorIs(t, err, resolveErr)
	}

	assert.Equal(t, 1, calls)
}

func TestOwner_MultiTokenMode(t *testing.T) {
	pool, err := NewPool([]string{"a", "b"}, staticResolver("octocat", nil))
	require.NoError(t, err)

	_, err = pool.Owner(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single-token mode")
}
