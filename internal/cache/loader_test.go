package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_FetchOnMissThenCacheHit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))
	loader := NewLoader(store)

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "from-db", nil
	}

	value, err := loader.Load(ctx, NamespaceDegrees, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, "from-db", value)

	value, err = loader.Load(ctx, NamespaceDegrees, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, "from-db", value)
	assert.Equal(t, int32(1), calls.Load(), "second load must be served from cache")
}

func TestLoader_ConcurrentMissesShareOneFetch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))
	loader := NewLoader(store)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = loader.Load(ctx, NamespaceUniversities, "all", fetch)
		}(i)
	}

	// Let the goroutines pile up on the in-flight fetch before it returns.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
	assert.Equal(t, int32(1), calls.Load(), "concurrent misses must share a single fetch")
}

func TestLoader_FetchErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))
	loader := NewLoader(store)

	var calls atomic.Int32
	boom := errors.New("upstream down")
	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "recovered", nil
	}

	_, err := loader.Load(ctx, NamespaceCountries, "all", fetch)
	require.ErrorIs(t, err, boom)

	value, err := loader.Load(ctx, NamespaceCountries, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLoader_InvalidateForcesRefetch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))
	loader := NewLoader(store)

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		return calls.Add(1), nil
	}

	first, err := loader.Load(ctx, NamespacePacks, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(1), first)

	loader.InvalidateNamespace(ctx, NamespacePacks)

	second, err := loader.Load(ctx, NamespacePacks, "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), second, "invalidation must force the next load to hit the source")
}
