package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFraudModel(t *testing.T, url string, fallbacks *int) FraudModel {
	t.Helper()
	cfg := config.FraudModel{Enabled: true, URL: url, Timeout: 200 * time.Millisecond}
	return NewFraudModel(cfg, func() { *fallbacks++ }, logger.Nop())
}

func TestFraudModel_Score(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		want         int
		wantFallback bool
	}{
		{name: "in range", status: http.StatusOK, body: `{"score": 12}`, want: 12},
		{name: "clamped above", status: http.StatusOK, body: `{"score": 90}`, want: 25},
		{name: "clamped below", status: http.StatusOK, body: `{"score": -4}`, want: 0},
		{name: "zero is a valid score", status: http.StatusOK, body: `{"score": 0}`, want: 0},
		{name: "missing score", status: http.StatusOK, body: `{}`, want: 0, wantFallback: true},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, want: 0, wantFallback: true},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, want: 0, wantFallback: true},
		{name: "not json", status: http.StatusOK, body: `twelve`, want: 0, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var fallbacks int
			m := newTestFraudModel(t, srv.URL, &fallbacks)

			assert.Equal(t, tt.want, m.Score(context.Background(), "abc", "LOW"))
			assert.Equal(t, tt.wantFallback, fallbacks == 1)
		})
	}
}

func TestFraudModel_SendsFingerprintAndHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req fraudModelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deadbeef", req.SHA256)
		assert.Equal(t, "MEDIUM", req.RiskHint)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score": 7}`))
	}))
	defer srv.Close()

	var fallbacks int
	m := newTestFraudModel(t, srv.URL, &fallbacks)

	assert.Equal(t, 7, m.Score(context.Background(), "deadbeef", "MEDIUM"))
	assert.Zero(t, fallbacks)
}

func TestFraudModel_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	var fallbacks int
	m := newTestFraudModel(t, srv.URL, &fallbacks)

	start := time.Now()
	assert.Equal(t, 0, m.Score(context.Background(), "abc", "HIGH"))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, 1, fallbacks)
}

func TestFraudModel_Unreachable(t *testing.T) {
	var fallbacks int
	m := newTestFraudModel(t, "http://127.0.0.1:1", &fallbacks)

	assert.Equal(t, 0, m.Score(context.Background(), "abc", "LOW"))
	assert.Equal(t, 1, fallbacks)
}

func TestNewFraudModel_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.FraudModel
	}{
		{"disabled", config.FraudModel{Enabled: false, URL: "http://x"}},
		{"no url", config.FraudModel{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFraudModel(tt.cfg, nil, logger.Nop())
			assert.IsType(t, noopFraudModel{}, m)
			assert.Equal(t, 0, m.Score(context.Background(), "abc", "HIGH"))
		})
	}
}
