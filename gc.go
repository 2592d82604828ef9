package entitycache

import (
	"context"
	"sync"
	"time"
)

// Sweep removes all expired entries and returns how many were removed.
// The cache works correctly without sweeping since expiry is checked on
// every access; Sweep exists to bound memory in long-lived caches whose
// keys are rarely revisited.
func (c *Cache[T]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, ent := range c.entries {
		if !ent.Valid(now) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.metrics.recordSweep(removed)
		c.logger.Debug("cache sweep", "removed", removed)
	}
	return removed
}

// StartGC starts a background garbage collector that sweeps expired
// entries at the given interval.
//
// Returns a function that stops the collector. It is safe to call
// multiple times and blocks until the collector goroutine has exited.
//
// Example:
//
//	stop := cache.StartGC(5 * time.Minute)
//	defer stop()
func (c *Cache[T]) StartGC(interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
