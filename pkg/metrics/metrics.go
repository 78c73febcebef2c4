package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BlogViewsIncrementedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_blog_views_incremented_total",
			Help: "Total number of successful blog view increments.",
		},
	)

	HealthCheckFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_health_check_failures_total",
			Help: "Total number of health checks that could not reach the database.",
		},
	)

	ContentEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_events_published_total",
			Help: "Content change events handed to the broker, by outcome.",
		},
		[]string{"outcome"},
	)
)
