package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GalleryActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_actions_total",
			Help: "Gallery filter and lightbox actions by type.",
		},
		[]string{"action"},
	)

	VisibleCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_visible_cache_lookups_total",
			Help: "Visible entries cache lookups by result.",
		},
		[]string{"result"},
	)
)
