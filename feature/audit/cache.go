package audit

import (
	"context"
	"sync"
	"time"

	"inventory-auditor/core/ledger"

	"golang.org/x/sync/singleflight"
)

// ledgers is one materialized snapshot of both sides.
type ledgers struct {
	fba        []ledger.Record
	storefront []ledger.Record
	built      time.Time
}

// ledgerCache reuses fetched ledgers for read-only calls. A zero TTL
// disables caching entirely and every call hits the sources.
type ledgerCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	current *ledgers
	sf      singleflight.Group
}

func newLedgerCache(ttl time.Duration) *ledgerCache {
	return &ledgerCache{ttl: ttl}
}

func (c *ledgerCache) expired(snap *ledgers) bool {
	if c.ttl == 0 {
		return true
	}
	return time.Since(snap.built) > c.ttl
}

// get returns a fresh snapshot, fetching via fn when the cached one is
// missing or expired. Concurrent callers share a single fetch.
func (c *ledgerCache) get(ctx context.Context, fn func(context.Context) (*ledgers, error)) (*ledgers, error) {
	c.mu.RLock()
	snap := c.current
	c.mu.RUnlock()

	if snap != nil && !c.expired(snap) {
		return snap, nil
	}

	result, err, _ := c.sf.Do("ledgers", func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		c.mu.RLock()
		snap := c.current
		c.mu.RUnlock()

		if snap != nil && !c.expired(snap) {
			return snap, nil
		}

		fresh, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		fresh.built = time.Now()

		if c.ttl > 0 {
			c.mu.Lock()
			c.current = fresh
			c.mu.Unlock()
		}
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*ledgers), nil
}

// invalidate drops the cached snapshot so the next read refetches.
func (c *ledgerCache) invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}
