package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BackendMetrics tracks webhook calls made by the client.
type BackendMetrics struct {
	registry *prometheus.Registry

	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge
}

func NewBackendMetrics(service string) *BackendMetrics {
	registry := prometheus.NewRegistry()

	callsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragdoc",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Total webhook calls by endpoint and outcome.",
		},
		[]string{"service", "endpoint", "outcome"},
	)
	callDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ragdoc",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Webhook call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ragdoc",
			Subsystem: "backend",
			Name:      "in_flight_calls",
			Help:      "Number of in-flight webhook calls.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(callsTotal, callDuration, inFlight)

	return &BackendMetrics{
		registry:     registry,
		callsTotal:   callsTotal,
		callDuration: callDuration,
		inFlight:     inFlight,
	}
}

// ObserveCall records one completed webhook round-trip.
func (m *BackendMetrics) ObserveCall(service, endpoint string, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.callsTotal.WithLabelValues(service, endpoint, outcome).Inc()
	m.callDuration.WithLabelValues(service, endpoint).Observe(elapsed.Seconds())
}

func (m *BackendMetrics) CallStarted() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *BackendMetrics) CallFinished() {
	if m == nil {
		return
	}
	m.inFlight.Dec()
}

// Handler exposes the registry for an optional /metrics listener.
func (m *BackendMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
