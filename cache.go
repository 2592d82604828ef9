package entitycache

import (
	"context"
	"iter"
	"log/slog"
	"sync"
	"time"

	platform "github.com/jmgilman/go/errors"
	"golang.org/x/sync/singleflight"
)

// LookupFunc performs the authoritative fetch for a key on a cache miss.
// It typically issues a remote call and decodes the response into T.
// Returning an error (including ErrNotFound) leaves the cache untouched.
type LookupFunc[T any] func(ctx context.Context, key string) (T, error)

// Cache is an in-memory TTL cache for one entity domain.
// All methods are safe for concurrent use by multiple goroutines.
type Cache[T any] struct {
	ttl    time.Duration
	lookup LookupFunc[T]
	logger *slog.Logger
	now    func() time.Time

	sf *singleflight.Group // non-nil only with WithSingleFlight

	mu      sync.RWMutex
	entries map[string]Entry[T]

	metrics metrics
}

// New creates a cache with the given lookup function and entry TTL.
// The lookup must be non-nil and the TTL must be greater than zero.
//
// Example:
//
//	cache, err := entitycache.New(lookup, 5*time.Minute)
func New[T any](lookup LookupFunc[T], ttl time.Duration, opts ...Option) (*Cache[T], error) {
	if lookup == nil {
		return nil, platform.New(platform.CodeInvalidConfig, "lookup function must be provided")
	}
	if ttl <= 0 {
		return nil, platform.New(platform.CodeInvalidConfig, "ttl must be greater than 0")
	}

	options := &options{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	c := &Cache[T]{
		ttl:     ttl,
		lookup:  lookup,
		logger:  options.logger,
		now:     options.now,
		entries: make(map[string]Entry[T]),
	}
	if options.singleFlight {
		c.sf = new(singleflight.Group)
	}
	return c, nil
}

// Get returns the cached value for key, fetching it via the lookup
// function on a miss or an expired entry. A successful fetch is stored
// before returning; a failed fetch propagates unchanged and stores
// nothing, so the next Get attempts the lookup again.
//
// If ctx is cancelled while the lookup is in flight, the result is
// discarded rather than cached.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, error) {
	if value, ok := c.read(key); ok {
		return value, nil
	}

	if c.sf != nil {
		value, err, shared := c.sf.Do(key, func() (any, error) {
			return c.fetch(ctx, key)
		})
		if err != nil {
			var zero T
			return zero, err
		}
		if shared {
			c.logger.Debug("lookup shared across concurrent callers", "key", key)
		}
		return value.(T), nil
	}

	return c.fetch(ctx, key)
}

// Set stores value under key with fresh timestamps, replacing any
// existing entry. It is typically called after a successful create so the
// next Get avoids a round trip.
func (c *Cache[T]) Set(key string, value T) {
	ent := newEntry(value, c.ttl, c.now())

	c.mu.Lock()
	c.entries[key] = ent
	c.mu.Unlock()

	c.logger.Debug("cache set", "key", key, "expires_at", ent.ExpiresAt)
}

// Invalidate removes the entry for key if present. Removing an absent key
// is a no-op, so the call is idempotent.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.logger.Debug("cache invalidate", "key", key)
}

// Clear removes all entries. Owners call it after bulk operations whose
// effect on individual keys is not cheaply enumerable.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	removed := len(c.entries)
	c.entries = make(map[string]Entry[T])
	c.mu.Unlock()

	c.logger.Debug("cache clear", "removed", removed)
}

// Values returns a lazy, restartable sequence over all currently valid
// cached values. Expired entries are skipped but not removed; they are
// purged on their next Get. Iteration order is unspecified.
//
// Example:
//
//	for offer := range cache.Values() {
//	    render(offer)
//	}
func (c *Cache[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c.mu.RLock()
		snapshot := make([]Entry[T], 0, len(c.entries))
		for _, ent := range c.entries {
			snapshot = append(snapshot, ent)
		}
		c.mu.RUnlock()

		now := c.now()
		for _, ent := range snapshot {
			if !ent.Valid(now) {
				continue
			}
			if !yield(ent.Value) {
				return
			}
		}
	}
}

// Len returns the number of currently valid entries.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	n := 0
	for _, ent := range c.entries {
		if ent.Valid(now) {
			n++
		}
	}
	return n
}

// read returns the value for key if a valid entry exists. An expired
// entry found along the way is purged, guarding against racing with a
// fresher overwrite.
func (c *Cache[T]) read(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	ent, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.metrics.recordMiss()
		c.logger.Debug("cache miss", "key", key)
		return zero, false
	}

	if ent.Valid(c.now()) {
		c.metrics.recordHit()
		c.logger.Debug("cache hit", "key", key)
		return ent.Value, true
	}

	// Expired. Remove it unless another goroutine stored a fresher entry
	// since the read above.
	c.mu.Lock()
	if cur, still := c.entries[key]; still && cur.InsertedAt.Equal(ent.InsertedAt) {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	c.metrics.recordExpiry()
	c.logger.Debug("cache entry expired", "key", key)
	return zero, false
}

// fetch invokes the lookup and stores a successful result. Results of
// cancelled contexts are discarded so abandoned work never writes back.
func (c *Cache[T]) fetch(ctx context.Context, key string) (T, error) {
	var zero T

	value, err := c.lookup(ctx, key)
	if err != nil {
		c.metrics.recordLookupFailure()
		if IsNotFound(err) {
			c.logger.Debug("lookup reported not found", "key", key)
		} else {
			c.logger.Debug("lookup failed", "key", key, "error", err)
		}
		return zero, err
	}

	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	c.Set(key, value)
	return value, nil
}
