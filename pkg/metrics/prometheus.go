package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerErrors *prometheus.CounterVec
	agreements     *prometheus.CounterVec
	signals        *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsfuse_provider_errors_total",
				Help: "Total content provider failures by provider and severity",
			},
			[]string{"provider", "severity"},
		),
		agreements: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsfuse_agreements_total",
				Help: "Total agreement verdicts by type",
			},
			[]string{"type"},
		),
		signals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsfuse_signals_total",
				Help: "Total generated signals by symbol and action",
			},
			[]string{"symbol", "action"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsfuse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsfuse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordProviderError records a content provider failure.
func (r *Recorder) RecordProviderError(provider, severity string) {
	r.providerErrors.WithLabelValues(provider, severity).Inc()
}

// RecordAgreement records an agreement verdict.
func (r *Recorder) RecordAgreement(kind string) {
	r.agreements.WithLabelValues(kind).Inc()
}

// RecordSignal records a generated signal.
func (r *Recorder) RecordSignal(symbol, action string) {
	r.signals.WithLabelValues(symbol, action).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
