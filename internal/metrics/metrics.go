package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of authenticated webhook events by topic and disposition",
		},
		[]string{"topic", "disposition"},
	)

	WebhookRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_rejected_total",
			Help: "Total number of webhook requests rejected for a bad signature",
		},
	)

	WebhookStoreFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_store_failures_total",
			Help: "Total number of webhook events that failed on an order store call",
		},
	)

	SSESubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sse_subscribers",
			Help: "Current number of connected order stream subscribers",
		},
	)
)

// Register registers all metrics with the default registry. Call once at
// startup.
func Register() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		WebhookEventsTotal,
		WebhookRejectedTotal,
		WebhookStoreFailuresTotal,
		SSESubscribers,
	)
}
