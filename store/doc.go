// Package store provides read-through entity stores that pair a backend
// client with an entitycache.Cache, keeping the two coherent across
// mutations.
//
// # Overview
//
// A Store owns one cache for one entity domain (requests, offers, service
// types). Reads go through the cache; writes go to the backend and then
// repair the cache:
//
//   - Create stores the decoded result proactively, so the next Get needs
//     no round trip.
//   - Update and Delete invalidate the key, since the backend returns a
//     new record version the cache cannot predict.
//   - Refresh replaces the entire cache contents from a bulk fetch.
//
// The backend is abstracted behind the Client interface, which models a
// remote content-addressed store: records are addressed by opaque keys the
// backend assigns, and payloads travel as raw JSON that the store decodes
// into its record type.
//
// # Usage
//
//	requests, err := store.New[store.Request](client, 5*time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	key, created, err := requests.Create(ctx, store.Request{
//	    Title:       "Need a logo",
//	    Description: "Vector logo for the community site",
//	    Status:      store.RequestStatusPublished,
//	    Skills:      []string{"design"},
//	})
//
//	same, err := requests.Get(ctx, key) // served from cache
package store
