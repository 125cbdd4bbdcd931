package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "reuses caller trace id", requestTraceID: "abc-123"},
		{name: "generates trace id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/verify?x=1", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/verify?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Contains(t, entry, "duration")
	assert.Equal(t, http.StatusCreated, rr.Code)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w *responseWriter)
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{
			name:       "explicit header",
			write:      func(w *responseWriter) { w.WriteHeader(http.StatusAccepted) },
			wantStatus: http.StatusAccepted,
		},
		{
			name: "second header ignored",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "implicit 200 and accumulated size",
			write: func(w *responseWriter) {
				w.Write([]byte("ab"))
				w.Write([]byte("cde"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
			wantBody:   "abcde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Get("/api/health", ok)
	router.Post("/api/verify", ok)
	router.Get("/api/verifications/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodPost, "/api/health", http.StatusNotFound},
		{http.MethodPost, "/api/verify", http.StatusOK},
		{http.MethodGet, "/api/verify", http.StatusNotFound},
		{http.MethodDelete, "/api/verifications/1", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
