package catalog

import (
	"context"
	"sync"
)

// MemCache holds the snapshot in memory. Useful for tests and for running
// without any persistence at all.
type MemCache struct {
	mu   sync.RWMutex
	snap *snapshot
}

func NewMemCache() *MemCache {
	return &MemCache{}
}

func (c *MemCache) Ping(ctx context.Context) error { return nil }

func (c *MemCache) Save(ctx context.Context, products []Product) error {
	snap, err := newSnapshot(products)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.snap = &snap
	c.mu.Unlock()
	return nil
}

func (c *MemCache) Load(ctx context.Context) ([]Product, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snap == nil {
		return nil, false, nil
	}

	out := make([]Product, len(c.snap.Products))
	copy(out, c.snap.Products)
	return out, true, nil
}
