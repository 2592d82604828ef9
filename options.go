package entitycache

import (
	"log/slog"
	"time"
)

// Option configures cache construction.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	now          func() time.Time
	singleFlight bool
}

// WithLogger enables diagnostic logging of hits, misses, and evictions at
// debug level. Without this option the cache logs nothing.
//
// Example:
//
//	cache, err := entitycache.New(lookup, ttl,
//	    entitycache.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithClock overrides the time source used for entry timestamps and
// freshness checks. This option is primarily useful for testing expiry
// behavior without sleeping.
//
// Example:
//
//	now := time.Now()
//	cache, err := entitycache.New(lookup, ttl,
//	    entitycache.WithClock(func() time.Time { return now }))
func WithClock(now func() time.Time) Option {
	return func(opts *options) {
		opts.now = now
	}
}

// WithSingleFlight collapses concurrent misses for the same key into a
// single lookup invocation whose result is shared by all waiting callers.
//
// Without this option each concurrent miss invokes the lookup
// independently and the last result to complete wins the cached slot.
// Note that a shared fetch runs under the context of whichever caller
// initiated it; cancelling that context fails the fetch for every waiter.
//
// Example:
//
//	cache, err := entitycache.New(lookup, ttl,
//	    entitycache.WithSingleFlight())
func WithSingleFlight() Option {
	return func(opts *options) {
		opts.singleFlight = true
	}
}
