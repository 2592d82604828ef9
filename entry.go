package entitycache

import "time"

// Entry is a single cached value with its freshness window.
// Entries are immutable once created; Set replaces rather than mutates.
type Entry[T any] struct {
	// Value is the cached entity.
	Value T
	// InsertedAt is when the entry was stored or last refreshed.
	InsertedAt time.Time
	// ExpiresAt is InsertedAt plus the cache TTL. Derived, never mutated.
	ExpiresAt time.Time
}

// newEntry stamps a value with its insertion time and derived expiry.
func newEntry[T any](value T, ttl time.Duration, now time.Time) Entry[T] {
	return Entry[T]{
		Value:      value,
		InsertedAt: now,
		ExpiresAt:  now.Add(ttl),
	}
}

// Valid reports whether the entry is still fresh at the given instant.
// An entry is valid strictly before its expiry; at ExpiresAt it is stale.
func (e Entry[T]) Valid(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}
