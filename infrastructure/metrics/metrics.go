package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache outcomes
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

var (
	// CacheLookups counts typed cache lookups by key category (resolve, stats, uploads, latest, popular).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_cache_lookups_total",
			Help: "Total number of cache lookups by category and result",
		},
		[]string{"category", "result"},
	)

	// FallbackResponses counts demo data synthesized because no credential was configured.
	FallbackResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_fallback_responses_total",
			Help: "Total number of synthesized fallback results by category",
		},
		[]string{"category"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_upstream_requests_total",
			Help: "Total number of YouTube Data API calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_upstream_request_duration_seconds",
			Help:    "Duration of YouTube Data API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
