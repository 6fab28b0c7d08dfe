package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Loader layers request deduplication over a Store. Concurrent misses for the
// same namespace/key share one upstream fetch instead of stampeding the
// database.
type Loader struct {
	store Store
	group singleflight.Group
}

// NewLoader wraps a Store with singleflight read-through behaviour.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Load returns the cached value for namespace/key, fetching and storing it on
// a miss. A fetch error is returned to every waiting caller and nothing is
// cached, so the next request retries.
func (l *Loader) Load(ctx context.Context, namespace, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	if value, ok := l.store.Get(ctx, namespace, key); ok {
		return value, nil
	}

	value, err, _ := l.group.Do(namespace+"/"+key, func() (any, error) {
		// Re-check under the flight: another caller may have just stored it.
		if value, ok := l.store.Get(ctx, namespace, key); ok {
			return value, nil
		}
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		l.store.Set(ctx, namespace, key, value)
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate drops one entry from the underlying store.
func (l *Loader) Invalidate(ctx context.Context, namespace, key string) {
	l.store.Invalidate(ctx, namespace, key)
}

// InvalidateNamespace drops a whole namespace from the underlying store.
func (l *Loader) InvalidateNamespace(ctx context.Context, namespace string) {
	l.store.InvalidateNamespace(ctx, namespace)
}
