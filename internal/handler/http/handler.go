package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/internal/validators"
)

// Handler serves the verifier REST API.
type Handler struct {
	services *service.Services

	// metrics serves the Prometheus scrape endpoint; nil disables /metrics.
	metrics http.Handler

	validator      validators.Validator
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		validator:      validators.NewUploadValidator(cfg.MaxUploadSize),
		maxUploadSize:  cfg.MaxUploadSize,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
