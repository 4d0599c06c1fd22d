package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"FanMarket/internal/catalog"
	"FanMarket/internal/feed"
	"FanMarket/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	feedURL := getenv("FEED_URL", "")

	cache, err := openCache(context.Background())
	if err != nil {
		log.Fatal("open cache", zap.Error(err))
	}

	var feedClient catalog.Feed
	if feedURL != "" {
		feedClient = feed.NewClient(feedURL)
	} else {
		log.Warn("FEED_URL not set, serving cached or empty catalog")
	}

	registry := prometheus.NewRegistry()

	store := catalog.NewStore(log, cache, feedClient)
	store.Metrics = catalog.NewStoreMetrics(registry)
	store.Start(context.Background())

	s := &catalog.Server{
		Store:     store,
		Log:       log,
		ImageBase: getenv("IMAGE_BASE_URL", "/image"),
		Phone:     getenv("WHATSAPP_PHONE", ""),
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:               log,
		Service:           service,
		Registry:          registry,
		MetricsEnabled:    getenv("METRICS_ENABLED", "") == "true",
		MetricsToken:      getenv("METRICS_TOKEN", ""),
		RateLimit:         getint("RATE_LIMIT", 0),
		RateWindowSeconds: getint("RATE_WINDOW_SECONDS", 60),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openCache(ctx context.Context) (catalog.Cache, error) {
	switch driver := getenv("CACHE_DRIVER", "file"); driver {
	case "file":
		return catalog.NewFileCache(getenv("CACHE_PATH", "")), nil
	case "memory":
		return catalog.NewMemCache(), nil
	case "postgres":
		dsn := getenv("DATABASE_URL", "")
		if dsn == "" {
			return nil, fmt.Errorf("CACHE_DRIVER=postgres requires DATABASE_URL")
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
		return nil, fmt.Errorf("unknown CACHE_DRIVER %q", driver)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
