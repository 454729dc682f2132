package cache

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Loader produces the value for a key on a cache miss.
type Loader[T any] func(ctx context.Context) (T, error)

// Loading couples a Store with a singleflight group so that concurrent misses
// for the same key share one load. The group's per-key registration is the
// inflight slot: it is claimed atomically, held for the duration of the load
// without blocking other keys, and released exactly once on completion.
type Loading[T any] struct {
	store Store[T]
	group singleflight.Group
}

func NewLoading[T any](store Store[T]) *Loading[T] {
	return &Loading[T]{store: store}
}

// GetOrLoad returns the live cached value for key, or runs load to produce
// one. All callers that join an in-flight load observe its single outcome:
// one shared value on success, the same error on failure. A failed load
// caches nothing; the next independent call starts a fresh attempt.
//
// The load runs detached from the calling request's cancellation, so a waiter
// abandoning the request never aborts the load for the others — the result
// still lands in the store for future callers.
func (l *Loading[T]) GetOrLoad(ctx context.Context, key string, load Loader[T]) (T, error) {
	var zero T

	v, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if ok {
		return v, nil
	}

	ch := l.group.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)

		// Re-check under the flight: a racing caller may have stored the
		// value between our miss and the slot registration.
		if v, ok, err := l.store.Get(loadCtx, key); err == nil && ok {
			return v, nil
		}

		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		if err := l.store.Set(loadCtx, key, v); err != nil {
			// Serving the freshly loaded value still succeeds; only the
			// write-back failed.
			log.Warn().Err(err).Str("key", key).Msg("cache write-back failed")
		}

		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
