package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

//nolint:gochecknoglobals
var (
	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tarkov_trader_catalog_reloads_total",
		Help: "Total number of catalog reloads by result",
	}, []string{"result"})

	reloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tarkov_trader_catalog_reload_duration_seconds",
		Help:    "Duration of catalog reloads including the provider request",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), //nolint:mnd
	})

	catalogItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tarkov_trader_catalog_items",
		Help: "Number of items in the current catalog snapshot",
	})

	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tarkov_trader_catalog_searches_total",
		Help: "Total number of catalog views derived, by mode",
	}, []string{"mode"})
)
