package store

import (
	"context"
	"encoding/json"
)

// Client is the backend boundary for one entity domain. Implementations
// wrap the remote call layer of a content-addressed store: keys are
// opaque identifiers assigned by the backend (typically encoded content
// hashes) and payloads are raw JSON records.
//
// A Fetch for a key with no record must return an error satisfying
// entitycache.IsNotFound, so stores can distinguish absence from failure.
// Clients own their retry and timeout behavior; the store layer performs
// neither.
type Client interface {
	// Fetch returns the current record for key.
	Fetch(ctx context.Context, key string) (json.RawMessage, error)

	// FetchAll returns every record in the domain, keyed by identifier.
	FetchAll(ctx context.Context) (map[string]json.RawMessage, error)

	// Create stores a new record and returns its backend-assigned key
	// along with the stored form of the record.
	Create(ctx context.Context, record any) (string, json.RawMessage, error)

	// Update replaces the record for key and returns its stored form.
	Update(ctx context.Context, key string, record any) (json.RawMessage, error)

	// Delete removes the record for key.
	Delete(ctx context.Context, key string) error
}
