package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Media database fetch metrics
var (
	TMDBRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of requests sent to the media database, by HTTP status (or \"error\" on transport failure).",
		},
		[]string{"status"},
	)
)

// Page rendering metrics
var (
	PageRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Total number of rendered pages, by view.",
		},
		[]string{"view"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of inbound HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// View label values for PageRendersTotal.
const (
	ViewShow     = "show"
	ViewNotFound = "not_found"
	ViewError    = "error"
)

func init() {
	prometheus.MustRegister(
		TMDBRequestsTotal,
		PageRendersTotal,
		HTTPRequestDuration,
	)
}
