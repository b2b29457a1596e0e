package repository

import (
	"context"
	"sync"
	"time"

	"tutor_dashboard_backend/pkg/monitoring"
)

type cacheEntry struct {
	snap      *Snapshot
	fetchedAt time.Time
}

// TableCache holds materialized snapshots keyed by logical table name, each
// with its own staleness clock. Reads within the TTL return the identical
// snapshot; a failed refresh leaves whatever was cached before untouched.
// The lock exists because the dashboard serves multiple tutors from one
// process even though each interaction is itself sequential.
type TableCache struct {
	store Store

	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*cacheEntry

	now func() time.Time
}

func NewTableCache(store Store, ttl time.Duration) *TableCache {
	return &TableCache{
		store:   store,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

// SetTTL adjusts the staleness window; existing entries are re-judged against
// the new value on their next Get.
func (c *TableCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	c.ttl = ttl
	c.mu.Unlock()
}

// Get returns the cached snapshot for a logical table, materializing from the
// remote store on first access or after expiry. Materialization is
// all-or-nothing: an error never replaces a previously cached entry.
func (c *TableCache) Get(ctx context.Context, name string) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
		monitoring.CacheHits.WithLabelValues(name).Inc()
		return e.snap, nil
	}
	monitoring.CacheMisses.WithLabelValues(name).Inc()

	snap, err := c.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	c.entries[name] = &cacheEntry{snap: snap, fetchedAt: c.now()}
	return snap, nil
}

// Fresh bypasses the cache entirely: mutations locate their target row against
// live data, never a stale snapshot. The result is not stored.
func (c *TableCache) Fresh(ctx context.Context, name string) (*Snapshot, error) {
	return c.fetch(ctx, name)
}

// Invalidate drops one table's snapshot; the next Get re-reads remotely.
func (c *TableCache) Invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// InvalidateAll drops every snapshot.
func (c *TableCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

func (c *TableCache) fetch(ctx context.Context, name string) (*Snapshot, error) {
	titles, err := c.store.WorksheetTitles(ctx)
	if err != nil {
		return nil, err
	}

	title, err := ResolveWorksheet(name, titles)
	if err != nil {
		return nil, err
	}

	grid, err := c.store.ReadAll(ctx, title)
	if err != nil {
		return nil, err
	}

	return materialize(title, grid), nil
}
