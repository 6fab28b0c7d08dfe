package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewMemoryStore(30*time.Minute, WithClock(clock))

	store.Set(ctx, NamespaceCourses, "all", "course-list")

	value, ok := store.Get(ctx, NamespaceCourses, "all")
	require.True(t, ok)
	assert.Equal(t, "course-list", value)

	clock.Advance(29 * time.Minute)
	_, ok = store.Get(ctx, NamespaceCourses, "all")
	assert.True(t, ok, "entry should still be fresh just inside the TTL")

	clock.Advance(time.Minute)
	_, ok = store.Get(ctx, NamespaceCourses, "all")
	assert.False(t, ok, "entry must expire once the TTL elapses")
}

func TestMemoryStore_InvalidateKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))

	store.Set(ctx, NamespacePacks, "group-a", 1)
	store.Set(ctx, NamespacePacks, "group-b", 2)

	store.Invalidate(ctx, NamespacePacks, "group-a")

	_, ok := store.Get(ctx, NamespacePacks, "group-a")
	assert.False(t, ok)
	_, ok = store.Get(ctx, NamespacePacks, "group-b")
	assert.True(t, ok, "other keys in the namespace must survive")
}

func TestMemoryStore_InvalidateNamespace(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))

	store.Set(ctx, NamespaceSelections, "student-1", "a")
	store.Set(ctx, NamespaceSelections, "student-2", "b")
	store.Set(ctx, NamespaceBranding, "current", "c")

	before := store.Version(NamespaceSelections)
	store.InvalidateNamespace(ctx, NamespaceSelections)
	assert.Equal(t, before+1, store.Version(NamespaceSelections))

	_, ok := store.Get(ctx, NamespaceSelections, "student-1")
	assert.False(t, ok)
	_, ok = store.Get(ctx, NamespaceSelections, "student-2")
	assert.False(t, ok)
	_, ok = store.Get(ctx, NamespaceBranding, "current")
	assert.True(t, ok, "other namespaces must be untouched")
}

func TestMemoryStore_VersionBumpsOnEveryWrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))

	before := store.Version(NamespaceBranding)
	store.Set(ctx, NamespaceBranding, "current", "v1")
	assert.Equal(t, before+1, store.Version(NamespaceBranding))

	store.Set(ctx, NamespaceBranding, "current", "v2")
	assert.Equal(t, before+2, store.Version(NamespaceBranding), "overwrites must be observable too")

	// The counter is an observer signal, not an eviction: the entry stays
	// readable across bumps.
	value, ok := store.Get(ctx, NamespaceBranding, "current")
	require.True(t, ok)
	assert.Equal(t, "v2", value)

	store.Invalidate(ctx, NamespaceBranding, "current")
	assert.Equal(t, before+3, store.Version(NamespaceBranding))
}

func TestMemoryStore_StaleVersionNotServed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(30*time.Minute, WithClock(newFakeClock()))

	store.Set(ctx, NamespacePacks, "all", "old")
	store.InvalidateNamespace(ctx, NamespacePacks)
	store.Set(ctx, NamespacePacks, "all", "new")

	value, ok := store.Get(ctx, NamespacePacks, "all")
	require.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestMemoryStore_MirrorRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	clock := newFakeClock()

	mirror, err := NewMirror(dir)
	require.NoError(t, err)

	store := NewMemoryStore(30*time.Minute, WithClock(clock), WithMirror(mirror))
	store.Set(ctx, NamespaceBranding, "current", map[string]any{"portal_name": "Electives"})

	// A second store over the same directory starts warm.
	mirror2, err := NewMirror(dir)
	require.NoError(t, err)
	restarted := NewMemoryStore(30*time.Minute, WithClock(clock), WithMirror(mirror2))

	value, ok := restarted.Get(ctx, NamespaceBranding, "current")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"portal_name": "Electives"}, value)
}

func TestMemoryStore_MirrorSkipsExpired(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	clock := newFakeClock()

	mirror, err := NewMirror(dir)
	require.NoError(t, err)

	store := NewMemoryStore(30*time.Minute, WithClock(clock), WithMirror(mirror))
	store.Set(ctx, NamespaceCourses, "all", "stale-by-restart")

	clock.Advance(31 * time.Minute)

	mirror2, err := NewMirror(dir)
	require.NoError(t, err)
	restarted := NewMemoryStore(30*time.Minute, WithClock(clock), WithMirror(mirror2))

	_, ok := restarted.Get(ctx, NamespaceCourses, "all")
	assert.False(t, ok, "expired mirror entries must not be rehydrated")
}
