// Package cache provides a namespaced read-through cache with TTL expiry,
// version-based invalidation and an optional file mirror that survives
// process restarts.
package cache

import (
	"context"
	"time"
)

// Clock abstracts time for the cache so expiry can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Namespaces used by the portal. Writers invalidate by namespace so readers
// never observe a stale list after a mutation.
const (
	NamespaceCountries    = "countries"
	NamespaceDegrees      = "degrees"
	NamespaceCourses      = "courses"
	NamespaceUniversities = "universities"
	NamespaceGroups       = "groups"
	NamespacePacks        = "packs"
	NamespaceSelections   = "selections"
	NamespaceBranding     = "branding"
)

// Store is the cache contract shared by the in-memory implementation and tests.
// A value is returned only while it is fresh: stored less than the TTL ago and
// written under the namespace's current version.
type Store interface {
	// Get returns the cached value for key, or false when the entry is
	// missing, expired or invalidated.
	Get(ctx context.Context, namespace, key string) (any, bool)

	// Set stores a value and bumps the namespace's change counter.
	Set(ctx context.Context, namespace, key string, value any)

	// Invalidate drops a single entry.
	Invalidate(ctx context.Context, namespace, key string)

	// InvalidateNamespace drops every entry in a namespace at once.
	InvalidateNamespace(ctx context.Context, namespace string)

	// Version reports a monotonic change counter for a namespace. It
	// increases on every write and invalidation, so an observer that
	// remembers the last counter it saw can detect that the namespace
	// moved without comparing values.
	Version(namespace string) uint64
}
