package service

import (
	"github.com/MKhiriev/go-id-verifier/internal/adapter"
	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/crypto"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/metrics"
	"github.com/MKhiriev/go-id-verifier/internal/store"
	"github.com/MKhiriev/go-id-verifier/models"
)

type Services struct {
	VerificationService VerificationService
	AuthService         AuthService
	AppInfoService      AppInfoService
}

func NewServices(
	storages *store.Storages,
	adapters *adapter.Adapters,
	envelope crypto.PiiEnvelope,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	verification := NewVerificationService(
		storages.Objects,
		storages.Verifications,
		adapters.ImageAnalyzer,
		adapters.TextExtractor,
		adapters.FraudModel,
		envelope,
		m,
		logger,
	)

	return &Services{
		VerificationService: NewVerificationValidationService(cfg.Server.MaxUploadSize).Wrap(verification),
		AuthService:         NewAuthService(cfg.App, logger),
		AppInfoService:      appInfo,
	}, nil
}
