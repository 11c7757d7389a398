// Package observability holds the Prometheus metrics exported on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "depviz_render_seconds",
		Help:    "Time spent rendering a dashboard view.",
		Buckets: prometheus.DefBuckets,
	}, []string{"surface"})

	RenderedFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depviz_rendered_files",
		Help: "Number of cards shown by the most recent render.",
	})

	LiveSearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depviz_live_searches_total",
		Help: "Total number of debounced live searches that produced a render.",
	})

	DatasetReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "depviz_dataset_reloads_total",
		Help: "Total number of dataset reload attempts by outcome.",
	}, []string{"result"})

	DatasetFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depviz_dataset_files",
		Help: "Number of files in the loaded dataset.",
	})

	LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depviz_live_connections",
		Help: "Open live-search websocket connections.",
	})
)
