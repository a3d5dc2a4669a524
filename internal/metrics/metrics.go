package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes.
const (
	OutcomeRequested = "requested"
	OutcomeDefault   = "default"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// LanguageResolutions counts whether the requested language was served
	// or the request fell back to the default.
	LanguageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_language_resolutions_total",
			Help: "Total number of request language resolutions by outcome",
		},
		[]string{"outcome"},
	)
)
