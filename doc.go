// Package entitycache provides an in-memory, TTL-based cache for entities
// fetched from a remote backend, typically a content-addressed distributed
// store where reads are expensive and there is no push invalidation.
//
// # Overview
//
// Each cache instance holds values of a single entity type, keyed by an
// opaque string identifier (usually an encoded content hash). A cache is
// constructed with a lookup function that performs the authoritative fetch;
// the cache invokes it on a miss or an expired entry, stores the result,
// and returns it. Callers invalidate single keys or clear the cache after
// mutating operations, since the backend cannot notify the cache of change.
//
// Expiry is lazy: entries past their TTL are skipped and purged on the
// next access, not by a background process. An optional garbage collector
// (StartGC) can sweep expired entries periodically for long-lived caches.
//
// # Usage
//
// Create one cache per entity domain and share it by reference:
//
//	lookup := func(ctx context.Context, key string) (Offer, error) {
//	    return client.FetchOffer(ctx, key)
//	}
//
//	cache, err := entitycache.New(lookup, 5*time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	offer, err := cache.Get(ctx, key) // fetches on miss, cached afterwards
//
// After a mutation, the owner is responsible for coherence:
//
//	cache.Set(key, created)  // after create, avoid a refetch
//	cache.Invalidate(key)    // after update or delete
//	cache.Clear()            // after a bulk operation
//
// # Failure Semantics
//
// Lookup failures are never cached and never retried by the cache; they
// propagate to the caller unchanged. A lookup that reports not-found (see
// ErrNotFound and IsNotFound) leaves no entry behind, so the next Get
// attempts the fetch again.
//
// # Concurrency
//
// All methods are safe for concurrent use. By default, concurrent Get
// calls that miss on the same key each invoke the lookup independently and
// the last result to arrive wins the cached slot. WithSingleFlight
// collapses such concurrent misses into one shared fetch.
package entitycache
