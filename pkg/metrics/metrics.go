package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ews_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// AlertTransitions counts lifecycle actions applied to alerts by action and outcome.
	AlertTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ews_alert_transitions_total",
			Help: "Total number of alert lifecycle transitions",
		},
		[]string{"action", "result"},
	)

	// NotificationsEmitted counts notifications created by the lifecycle engine (created|failed).
	NotificationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ews_notifications_emitted_total",
			Help: "Total number of notifications emitted by alert transitions",
		},
		[]string{"result"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ews_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
