package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"FanMarket/internal/feed"
)

// DefaultCeiling bounds how long the store reports "loading" when the feed
// is slow or unreachable.
const DefaultCeiling = 10 * time.Second

// Feed is the fetch side of the pipeline. *feed.Client satisfies it.
type Feed interface {
	Fetch(ctx context.Context) ([]feed.Record, error)
}

// Store owns the in-memory product collection. On start it publishes
// whatever the cache held, refreshes from the live feed in the background,
// and settles its loading state at the earliest of cache hit, fetch
// completion or the ceiling timer firing. The fetch is never cancelled by
// the ceiling; a late response still lands. There is no retry: a failed
// fetch leaves the process on stale-or-empty data until restart.
type Store struct {
	Log     *zap.Logger
	Cache   Cache
	Feed    Feed // nil when no feed URL is configured
	Ceiling time.Duration
	Metrics *StoreMetrics

	mu       sync.RWMutex
	products []Product

	settleOnce sync.Once
	settled    chan struct{}
}

func NewStore(log *zap.Logger, cache Cache, f Feed) *Store {
	return &Store{
		Log:     log,
		Cache:   cache,
		Feed:    f,
		Ceiling: DefaultCeiling,
		settled: make(chan struct{}),
	}
}

// Start publishes the cached snapshot if one exists and kicks off the
// background refresh. It returns without waiting on the network.
func (s *Store) Start(ctx context.Context) {
	cached, ok, err := s.Cache.Load(ctx)
	switch {
	case err != nil:
		s.Log.Warn("cache load failed", zap.Error(err))
	case ok:
		s.replace(cached)
		s.settle("cache")
		s.Log.Info("serving cached snapshot", zap.Int("products", len(cached)))
	}

	if s.Feed == nil {
		s.settle("no feed configured")
		return
	}

	timer := time.AfterFunc(s.ceiling(), func() { s.settle("ceiling") })

	go func() {
		defer timer.Stop()
		s.refresh(ctx)
		s.settle("fetch")
	}()
}

func (s *Store) refresh(ctx context.Context) {
	start := time.Now()

	records, err := s.Feed.Fetch(ctx)
	if err != nil {
		s.Log.Warn("feed fetch failed, keeping current state",
			zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		s.Metrics.refreshResult("error")
		return
	}
	s.Metrics.observeFetch(time.Since(start))

	products := FromRecords(records)
	if len(products) == 0 {
		// An empty feed never clobbers a usable collection.
		s.Log.Warn("feed returned no valid rows, keeping current state")
		s.Metrics.refreshResult("empty")
		return
	}

	s.replace(products)
	if err := s.Cache.Save(ctx, products); err != nil {
		s.Log.Warn("cache save failed", zap.Error(err))
	}
	s.Metrics.refreshResult("ok")
	s.Log.Info("feed refreshed",
		zap.Int("products", len(products)), zap.Duration("elapsed", time.Since(start)))
}

func (s *Store) replace(products []Product) {
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.Metrics.setProducts(len(products))
}

// Products returns a copy of the current collection; callers never share
// the store's backing slice.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether the store is still waiting on its first
// resolution. It flips to false exactly once and stays there.
func (s *Store) Loading() bool {
	select {
	case <-s.settled:
		return false
	default:
		return true
	}
}

// Settled closes when the loading state resolves.
func (s *Store) Settled() <-chan struct{} {
	return s.settled
}

func (s *Store) settle(reason string) {
	s.settleOnce.Do(func() {
		close(s.settled)
		s.Log.Info("store settled", zap.String("reason", reason))
	})
}

func (s *Store) ceiling() time.Duration {
	if s.Ceiling > 0 {
		return s.Ceiling
	}
	return DefaultCeiling
}
