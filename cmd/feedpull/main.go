// feedpull fetches the product feed once and writes the cache snapshot, so
// a fresh deployment can come up warm before its first live fetch.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"FanMarket/internal/catalog"
	"FanMarket/internal/feed"
	"FanMarket/pkg/kit"
)

func main() {
	var (
		feedURL     string
		cacheDriver string
		cachePath   string
		databaseURL string
		timeout     time.Duration
	)

	flag.StringVar(&feedURL, "feed-url", os.Getenv("FEED_URL"), "feed URL (or FEED_URL env)")
	flag.StringVar(&cacheDriver, "cache", "file", "cache backend: file or postgres")
	flag.StringVar(&cachePath, "cache-path", "", "snapshot path for the file backend")
	flag.StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL for the postgres backend")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "overall fetch timeout")
	flag.Parse()

	log := kit.NewLogger("feedpull", os.Getenv("LOG_LEVEL"))
	defer func() { _ = log.Sync() }()

	if feedURL == "" {
		log.Fatal("feed URL is required: set -feed-url or FEED_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := run(ctx, log, feedURL, cacheDriver, cachePath, databaseURL); err != nil {
		log.Fatal("feedpull failed", zap.Error(err))
	}
}

func run(ctx context.Context, log *zap.Logger, feedURL, cacheDriver, cachePath, databaseURL string) error {
	cache, err := openCache(ctx, cacheDriver, cachePath, databaseURL)
	if err != nil {
		return err
	}

	start := time.Now()
	records, err := feed.NewClient(feedURL).Fetch(ctx)
	if err != nil {
		return err
	}

	products := catalog.FromRecords(records)
	if len(products) == 0 {
		return fmt.Errorf("feed yielded no valid rows")
	}

	if err := cache.Save(ctx, products); err != nil {
		return err
	}

	log.Info("snapshot written",
		zap.Int("products", len(products)),
		zap.Int("categories", len(catalog.Categories(products))),
		zap.Int("discounted", len(catalog.Discounted(products, len(products)))),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func openCache(ctx context.Context, driver, path, dsn string) (catalog.Cache, error) {
	switch driver {
	case "file":
		return catalog.NewFileCache(path), nil
	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("-cache=postgres requires -database-url or DATABASE_URL")
		}
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, err
		}
		c := catalog.NewPostgresCache(db)
		if err := c.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", driver)
	}
}
