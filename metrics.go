package entitycache

import "sync"

// Stats is a point-in-time snapshot of cache activity counters.
type Stats struct {
	// Hits counts Get calls served from a valid entry.
	Hits int64
	// Misses counts Get calls that found no entry.
	Misses int64
	// Expirations counts Get calls that found a stale entry.
	Expirations int64
	// LookupFailures counts lookup invocations that returned an error,
	// including not-found. With single-flight enabled a failed fetch
	// shared by several concurrent callers counts once, while each
	// caller still records its own miss, so this can run behind Misses.
	LookupFailures int64
	// Swept counts expired entries removed by Sweep.
	Swept int64
}

// metrics tracks cache activity. Counters are guarded by a mutex so a
// snapshot is internally consistent.
type metrics struct {
	mu sync.Mutex

	hits           int64
	misses         int64
	expirations    int64
	lookupFailures int64
	swept          int64
}

func (m *metrics) recordHit() {
	m.mu.Lock()
	m.hits++
	m.mu.Unlock()
}

func (m *metrics) recordMiss() {
	m.mu.Lock()
	m.misses++
	m.mu.Unlock()
}

func (m *metrics) recordExpiry() {
	m.mu.Lock()
	m.expirations++
	m.mu.Unlock()
}

func (m *metrics) recordLookupFailure() {
	m.mu.Lock()
	m.lookupFailures++
	m.mu.Unlock()
}

func (m *metrics) recordSweep(removed int) {
	m.mu.Lock()
	m.swept += int64(removed)
	m.mu.Unlock()
}

func (m *metrics) snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Hits:           m.hits,
		Misses:         m.misses,
		Expirations:    m.expirations,
		LookupFailures: m.lookupFailures,
		Swept:          m.swept,
	}
}

// Stats returns a snapshot of the cache's activity counters.
func (c *Cache[T]) Stats() Stats {
	return c.metrics.snapshot()
}
