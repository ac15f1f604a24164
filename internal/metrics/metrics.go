package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Saga names and outcomes used as label values.
const (
	SagaIssue  = "issue"
	SagaReturn = "return"

	OutcomeSuccess              = "success"
	OutcomeResourceNotFound     = "resource_not_found"
	OutcomeInvalidState         = "invalid_state"
	OutcomeCommunicationFailure = "communication_failure"
	OutcomeError                = "error"
)

// Recorder is what the loan saga and the catalog client report to.
type Recorder interface {
	ObserveSaga(saga, outcome string, elapsed time.Duration)
	IncEnrichmentFailure(snapshot string)
	IncRemoteRequest(target, operation, outcome string)
}

// Metrics wraps Prometheus metrics for the loan service.
type Metrics struct {
	registry           *prometheus.Registry
	sagaTotal          *prometheus.CounterVec
	sagaDuration       *prometheus.HistogramVec
	enrichmentFailures *prometheus.CounterVec
	remoteRequests     *prometheus.CounterVec
}

// New creates a metrics registry and registers loan metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	sagaTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loan_saga_total",
		Help: "Total number of loan sagas by saga and outcome.",
	}, []string{"saga", "outcome"})

	sagaDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loan_saga_duration_seconds",
		Help:    "Latency of loan sagas in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"saga"})

	enrichmentFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "loan_enrichment_failures_total",
		Help: "Snapshots that could not be attached to a loan response.",
	}, []string{"snapshot"})

	remoteRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_remote_requests_total",
		Help: "Calls made to the account and item stores.",
	}, []string{"target", "operation", "outcome"})

	registry.MustRegister(sagaTotal, sagaDuration, enrichmentFailures, remoteRequests)

	return &Metrics{
		registry:           registry,
		sagaTotal:          sagaTotal,
		sagaDuration:       sagaDuration,
		enrichmentFailures: enrichmentFailures,
		remoteRequests:     remoteRequests,
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSaga counts one finished saga and records its latency.
func (m *Metrics) ObserveSaga(saga, outcome string, elapsed time.Duration) {
	m.sagaTotal.WithLabelValues(saga, outcome).Inc()
	m.sagaDuration.WithLabelValues(saga).Observe(elapsed.Seconds())
}

// IncEnrichmentFailure counts a swallowed enrichment failure.
func (m *Metrics) IncEnrichmentFailure(snapshot string) {
	m.enrichmentFailures.WithLabelValues(snapshot).Inc()
}

// IncRemoteRequest counts one remote call attempt.
func (m *Metrics) IncRemoteRequest(target, operation, outcome string) {
	m.remoteRequests.WithLabelValues(target, operation, outcome).Inc()
}

// Nop discards everything. Used when metrics are not wired (tests, tools).
type Nop struct{}

func (Nop) ObserveSaga(string, string, time.Duration) {}
func (Nop) IncEnrichmentFailure(string)               {}
func (Nop) IncRemoteRequest(string, string, string)   {}
