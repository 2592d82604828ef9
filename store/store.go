package store

import (
	"context"
	"encoding/json"
	"time"

	platform "github.com/jmgilman/go/errors"

	"github.com/happenings-community/entitycache"
)

// Store is a read-through wrapper around one entity domain. It owns a
// single cache instance and keeps it coherent with the backend across
// create, update, delete, and bulk refresh.
type Store[T any] struct {
	client Client
	cache  *entitycache.Cache[T]
}

// New creates a store for one entity domain with the given cache TTL.
// Options are forwarded to the underlying cache.
//
// Example:
//
//	offers, err := store.New[store.Offer](client, 5*time.Minute)
func New[T any](client Client, ttl time.Duration, opts ...entitycache.Option) (*Store[T], error) {
	if client == nil {
		return nil, platform.New(platform.CodeInvalidConfig, "backend client must be provided")
	}

	lookup := func(ctx context.Context, key string) (T, error) {
		var zero T
		raw, err := client.Fetch(ctx, key)
		if err != nil {
			return zero, err
		}
		return decode[T](key, raw)
	}

	cache, err := entitycache.New(lookup, ttl, opts...)
	if err != nil {
		return nil, platform.Wrap(err, platform.CodeInvalidConfig, "invalid cache configuration")
	}

	return &Store[T]{client: client, cache: cache}, nil
}

// Get returns the record for key, fetching from the backend on a cache
// miss. Not-found and backend failures propagate unchanged.
func (s *Store[T]) Get(ctx context.Context, key string) (T, error) {
	return s.cache.Get(ctx, key)
}

// Create validates and stores a new record, returning its backend-assigned
// key and stored form. The result is cached proactively so an immediate
// Get needs no round trip.
func (s *Store[T]) Create(ctx context.Context, record T) (string, T, error) {
	var zero T
	if err := validate(record); err != nil {
		return "", zero, err
	}

	key, raw, err := s.client.Create(ctx, record)
	if err != nil {
		return "", zero, err
	}

	created, err := decode[T](key, raw)
	if err != nil {
		return "", zero, err
	}

	s.cache.Set(key, created)
	return key, created, nil
}

// Update validates and replaces the record for key. The cached entry is
// invalidated rather than overwritten: the backend may adjust the stored
// record, so the next Get fetches the authoritative version.
func (s *Store[T]) Update(ctx context.Context, key string, record T) (T, error) {
	var zero T
	if err := validate(record); err != nil {
		return zero, err
	}

	raw, err := s.client.Update(ctx, key, record)
	if err != nil {
		return zero, err
	}

	s.cache.Invalidate(key)
	return decode[T](key, raw)
}

// Delete removes the record for key from the backend and the cache.
func (s *Store[T]) Delete(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, key); err != nil {
		return err
	}
	s.cache.Invalidate(key)
	return nil
}

// Refresh replaces the cache contents with the backend's full record set.
// The existing cache is left untouched if the bulk fetch or any decode
// fails.
func (s *Store[T]) Refresh(ctx context.Context) error {
	all, err := s.client.FetchAll(ctx)
	if err != nil {
		return err
	}

	decoded := make(map[string]T, len(all))
	for key, raw := range all {
		record, err := decode[T](key, raw)
		if err != nil {
			return err
		}
		decoded[key] = record
	}

	s.cache.Clear()
	for key, record := range decoded {
		s.cache.Set(key, record)
	}
	return nil
}

// Cached returns all currently valid cached records, without touching the
// backend. Reactive layers poll it to synchronize derived state.
func (s *Store[T]) Cached() []T {
	var records []T
	for record := range s.cache.Values() {
		records = append(records, record)
	}
	return records
}

// Stats exposes the underlying cache's activity counters.
func (s *Store[T]) Stats() entitycache.Stats {
	return s.cache.Stats()
}

func decode[T any](key string, raw json.RawMessage) (T, error) {
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		var zero T
		return zero, platform.Wrapf(err, platform.CodeSchemaFailed, "decode record %s", key)
	}
	return record, nil
}

func validate(record any) error {
	if v, ok := record.(Validator); ok {
		return v.Validate()
	}
	return nil
}
