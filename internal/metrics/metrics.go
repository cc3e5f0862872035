package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes.
const (
	OutcomeCacheHit = "cache_hit"
	OutcomeFresh    = "fresh"
	OutcomeEmpty    = "empty"
	OutcomeFallback = "fallback"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Search metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_searches_total",
			Help: "Total number of job searches by outcome",
		},
		[]string{"outcome"},
	)

	ScrapeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_scrape_failures_total",
			Help: "Browser session failures by kind",
		},
		[]string{"kind"},
	)

	BrowserSessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "browser_session_duration_seconds",
			Help:    "Time spent in the browser step, including abandoned sessions",
			Buckets: []float64{1, 2.5, 5, 10, 15, 20, 25, 30, 45, 60},
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "result_cache_entries",
			Help: "Number of resident result cache entries, stale ones included",
		},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version"},
	)
)

// Init publishes the service identity.
func Init(serviceName, version string) {
	ApplicationInfo.WithLabelValues(serviceName, version).Set(1)
}
