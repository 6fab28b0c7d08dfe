package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
	epoch    uint64
}

// MemoryStore is a process-local Store implementation. All namespaces share a
// single TTL so operators reason about one freshness window, not eight.
//
// Two counters exist per namespace: the epoch, bumped by InvalidateNamespace
// so entries written before it become invisible, and the change counter
// behind Version, bumped by every write and invalidation so observers can
// detect that a namespace moved without comparing values.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]entry
	epochs  map[string]uint64
	changes map[string]uint64

	ttl    time.Duration
	clock  Clock
	mirror *Mirror
	logger *slog.Logger
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces the wall clock, used by tests to step time.
func WithClock(clock Clock) Option {
	return func(s *MemoryStore) { s.clock = clock }
}

// WithMirror attaches a file mirror. Writes go through to disk and fresh
// entries are rehydrated on construction.
func WithMirror(mirror *Mirror) Option {
	return func(s *MemoryStore) { s.mirror = mirror }
}

// WithLogger sets the logger used for mirror write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) { s.logger = logger }
}

// NewMemoryStore creates a MemoryStore with the given TTL.
func NewMemoryStore(ttl time.Duration, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]map[string]entry),
		epochs:  make(map[string]uint64),
		changes: make(map[string]uint64),
		ttl:     ttl,
		clock:   SystemClock(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mirror != nil {
		s.rehydrate()
	}
	return s
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, namespace, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.entries[namespace]
	if !ok {
		return nil, false
	}
	e, ok := ns[key]
	if !ok {
		return nil, false
	}
	if e.epoch != s.epochs[namespace] {
		return nil, false
	}
	if s.clock.Now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.value, true
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, namespace, key string, value any) {
	s.mu.Lock()
	ns, ok := s.entries[namespace]
	if !ok {
		ns = make(map[string]entry)
		s.entries[namespace] = ns
	}
	e := entry{
		value:    value,
		storedAt: s.clock.Now(),
		epoch:    s.epochs[namespace],
	}
	ns[key] = e
	s.changes[namespace]++
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.Write(namespace, key, value, e.storedAt, e.epoch); err != nil {
			s.logger.Warn("cache mirror write failed",
				slog.String("namespace", namespace),
				slog.String("key", key),
				slog.Any("error", err))
		}
	}
}

// Invalidate implements Store.
func (s *MemoryStore) Invalidate(_ context.Context, namespace, key string) {
	s.mu.Lock()
	if ns, ok := s.entries[namespace]; ok {
		delete(ns, key)
	}
	s.changes[namespace]++
	s.mu.Unlock()

	if s.mirror != nil {
		s.mirror.Remove(namespace, key)
	}
}

// InvalidateNamespace implements Store.
func (s *MemoryStore) InvalidateNamespace(_ context.Context, namespace string) {
	s.mu.Lock()
	s.epochs[namespace]++
	s.changes[namespace]++
	delete(s.entries, namespace)
	s.mu.Unlock()

	if s.mirror != nil {
		s.mirror.RemoveNamespace(namespace)
	}
}

// Version implements Store.
func (s *MemoryStore) Version(namespace string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.changes[namespace]
}

// rehydrate loads mirrored entries that are still within the TTL. Entries
// written by an older namespace epoch are skipped.
func (s *MemoryStore) rehydrate() {
	records, err := s.mirror.Load()
	if err != nil {
		s.logger.Warn("cache mirror load failed", slog.Any("error", err))
		return
	}

	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if now.Sub(rec.StoredAt) >= s.ttl {
			continue
		}
		ns, ok := s.entries[rec.Namespace]
		if !ok {
			ns = make(map[string]entry)
			s.entries[rec.Namespace] = ns
		}
		if rec.Version > s.epochs[rec.Namespace] {
			s.epochs[rec.Namespace] = rec.Version
		}
		s.changes[rec.Namespace]++
		ns[rec.Key] = entry{value: rec.Value, storedAt: rec.StoredAt, epoch: rec.Version}
	}
}
