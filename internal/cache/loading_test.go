package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadingForTest(t *testing.T) *Loading[string] {
	t.Helper()
	store, err := NewMemory[string](time.Minute, 100)
	require.NoError(t, err)
	return NewLoading[string](store)
}

func TestGetOrLoad_Hit(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemory[string](time.Minute, 100)
	require.NoError(t, err)
	loading := NewLoading[string](store)

	require.NoError(t, store.Set(ctx, "key", "cached"))

	value, err := loading.GetOrLoad(ctx, "key", func(context.Context) (string, error) {
		t.Fatal("loader must not run on a hit")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "cached", value)
}

func TestGetOrLoad_CoalescesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	loading := newLoadingForTest(t)

	const callers = 32

	var loads atomic.Int64
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = loading.GetOrLoad(ctx, "key", func(context.Context) (string, error) {
				loads.Add(1)
				<-release
				return "loaded", nil
			})
		}()
	}

	// let all callers join the flight before the load completes
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), loads.Load(), "exactly one load for N concurrent misses")
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "loaded", results[i])
	}
}

func TestGetOrLoad_FailurePropagatesToAllWaiters(t *testing.T) {
	ctx := context.Background()
	loading := newLoadingForTest(t)

	loadErr := errors.New("upstream exploded")
	release := make(chan struct{})

	var loads atomic.Int64

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = loading.GetOrLoad(ctx, "key", func(context.Context) (string, error) {
				loads.Add(1)
				<-release
				return "", loadErr
			})
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), loads.Load())
	for i := range callers {
		assert.ErrorIs(t, errs[i], loadErr)
	}

	// failure caches nothing: the next call starts a fresh load
	value, err := loading.GetOrLoad(ctx, "key", func(context.Context) (string, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
}

func TestGetOrLoad_SuccessIsCached(t *testing.T) {
	ctx := context.Background()
	loading := newLoadingForTest(t)

	var loads atomic.Int64
	load := func(context.Context) (string, error) {
		loads.Add(1)
		return "value", nil
	}

	for range 3 {
		value, err := loading.GetOrLoad(ctx, "key", load)
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	}

	assert.Equal(t, int64(1), loads.Load())
}

func TestGetOrLoad_WaiterCancellationDoesNotCancelLoad(t *testing.T) {
	loading := newLoadingForTest(t)

	started := make(chan struct{})
	release := make(chan struct{})
	loadCtxErr := make(chan error, 1)

	cancelled, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)

	var waiterErr error
	go func() {
		defer wg.Done()
		_, waiterErr = loading.GetOrLoad(cancelled, "key", func(loadCtx context.Context) (string, error) {
			close(started)
			<-release
			loadCtxErr <- loadCtx.Err()
			return "survived", nil
		})
	}()

	<-started
	cancel()
	wg.Wait()

	// the abandoning waiter observes its own cancellation...
	assert.ErrorIs(t, waiterErr, context.Canceled)

	close(release)

	// ...but the load keeps running on an uncancelled context
	select {
	case err := <-loadCtxErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("load did not complete after waiter cancellation")
	}

	// and its result still lands in the cache for future callers
	assert.Eventually(t, func() bool {
		value, err := loading.GetOrLoad(context.Background(), "key", func(context.Context) (string, error) {
			return "reloaded", nil
		})
		return err == nil && value == "survived"
	}, time.Second, 10*time.Millisecond)
}
