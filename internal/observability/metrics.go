package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by endpoint and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "directory",
		Name:      "signups_total",
		Help:      "Successful signups, by activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "directory",
		Name:      "unregistrations_total",
		Help:      "Successful unregistrations, by activity.",
	}, []string{"activity"})
	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "directory",
		Name:      "roster_size",
		Help:      "Current number of participants registered per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		signupsTotal,
		unregistrationsTotal,
		rosterSizeGauge,
	)
}

// RecordHTTPRequest counts one handled request.
func RecordHTTPRequest(endpoint, method, status string) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes request latency in seconds.
func RecordHTTPRequestDuration(endpoint, method string, seconds float64) {
	httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

// RecordSignup updates the signup counter and roster watermark for activity.
func RecordSignup(activity string, rosterSize int) {
	signupsTotal.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregistration updates the unregistration counter and roster watermark.
func RecordUnregistration(activity string, rosterSize int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}
