package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics tracks the feed pipeline. All methods are nil-safe so tests
// and the feedpull tool can run without a registry.
type StoreMetrics struct {
	Products     prometheus.Gauge
	Refreshes    *prometheus.CounterVec
	FetchSeconds prometheus.Histogram
}

func NewStoreMetrics(reg *prometheus.Registry) *StoreMetrics {
	m := &StoreMetrics{
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products currently published",
		}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_feed_refresh_total",
			Help: "Feed refresh attempts by result",
		}, []string{"result"}),
		FetchSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "catalog_feed_fetch_duration_seconds",
			Help: "Feed fetch and parse latency",
		}),
	}

	reg.MustRegister(m.Products, m.Refreshes, m.FetchSeconds)
	return m
}

func (m *StoreMetrics) refreshResult(result string) {
	if m == nil {
		return
	}
	m.Refreshes.WithLabelValues(result).Inc()
}

func (m *StoreMetrics) observeFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchSeconds.Observe(d.Seconds())
}

func (m *StoreMetrics) setProducts(n int) {
	if m == nil {
		return
	}
	m.Products.Set(float64(n))
}
