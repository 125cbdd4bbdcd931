package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementVerification("LOW", 10)
		m.IncrementFailure("object_storage")
		m.IncrementFraudModelFallback()
		m.ObserveVerifyLatency(time.Second)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncrementVerification("HIGH", 85)
	m.IncrementVerification("HIGH", 90)
	m.IncrementVerification("LOW", 5)
	m.IncrementFailure("image_analysis")
	m.IncrementFraudModelFallback()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Verifications.WithLabelValues("HIGH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues("LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PipelineFailures.WithLabelValues("image_analysis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FraudModelFallbacks))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.IncrementVerification("MEDIUM", 50)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `idverifier_verifications_total{tier="MEDIUM"} 1`)
	assert.Contains(t, rec.Body.String(), "idverifier_risk_score_bucket")
}
