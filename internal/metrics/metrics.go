// Package metrics exposes Prometheus collectors for the verification
// pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for the verification pipeline.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Completed verifications by risk tier
	Verifications *prometheus.CounterVec

	// Pipeline failures by stage
	PipelineFailures *prometheus.CounterVec

	// Calls to the external fraud model that fell back to a zero adjustment
	FraudModelFallbacks prometheus.Counter

	// Distribution of final risk scores
	RiskScores prometheus.Histogram

	// End-to-end pipeline latency
	VerifyLatency prometheus.Histogram
}

// New creates a new Metrics instance with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idverifier_verifications_total",
			Help: "Total completed verifications by risk tier",
		}, []string{"tier"}), // tier: "LOW", "MEDIUM", "HIGH"

		PipelineFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idverifier_pipeline_failures_total",
			Help: "Total aborted verifications by pipeline stage",
		}, []string{"stage"}),

		FraudModelFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "idverifier_fraud_model_fallbacks_total",
			Help: "Fraud model calls that failed or timed out and contributed zero",
		}),

		RiskScores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idverifier_risk_score",
			Help:    "Distribution of final risk scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),

		VerifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idverifier_verify_duration_seconds",
			Help:    "Duration of the full verification pipeline",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// IncrementVerification records a completed verification and its score.
func (m *Metrics) IncrementVerification(tier string, score int) {
	if m != nil {
		m.Verifications.WithLabelValues(tier).Inc()
		m.RiskScores.Observe(float64(score))
	}
}

// IncrementFailure records a pipeline abort at the given stage.
func (m *Metrics) IncrementFailure(stage string) {
	if m != nil {
		m.PipelineFailures.WithLabelValues(stage).Inc()
	}
}

// IncrementFraudModelFallback records a fail-open fraud model call.
func (m *Metrics) IncrementFraudModelFallback() {
	if m != nil {
		m.FraudModelFallbacks.Inc()
	}
}

// ObserveVerifyLatency records the total pipeline duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}

// Handler returns the HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
