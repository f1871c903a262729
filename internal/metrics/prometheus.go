package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resource_planner"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	alertsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "computed_total",
			Help:      "Alert payloads served, by whether they came from the cache",
		},
		[]string{"source"},
	)

	alertComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "computation_duration_seconds",
			Help:      "Time spent fetching data and computing an alert payload",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	alertResources = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "resources",
			Help:      "Resources per alert category in the last computed payload",
		},
		[]string{"category"},
	)

	webhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "deliveries_total",
			Help:      "Overload webhook deliveries by outcome",
		},
		[]string{"status"},
	)
)

// Alert payload sources
const (
	SourceComputed = "computed"
	SourceCache    = "cache"
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordAlertPayload counts an alert payload served from source
func RecordAlertPayload(source string) {
	alertsComputed.WithLabelValues(source).Inc()
}

// ObserveAlertComputation records how long a fresh computation took
func ObserveAlertComputation(seconds float64) {
	alertComputationDuration.Observe(seconds)
}

// SetAlertResources sets the per-category gauge from a freshly computed payload
func SetAlertResources(category string, count int) {
	alertResources.WithLabelValues(category).Set(float64(count))
}

// RecordWebhookDelivery counts a webhook attempt by outcome
func RecordWebhookDelivery(status string) {
	webhookDeliveries.WithLabelValues(status).Inc()
}
