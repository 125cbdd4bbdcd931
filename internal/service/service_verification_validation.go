package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-verifier/internal/validators"
	"github.com/MKhiriev/go-id-verifier/models"
)

// VerificationValidationService rejects invalid uploads before the pipeline
// touches any collaborator. Reads are passed through.
type VerificationValidationService struct {
	inner     VerificationService
	validator validators.Validator
}

func NewVerificationValidationService(maxUploadSize int64) VerificationServiceWrapper {
	return &VerificationValidationService{
		validator: validators.NewUploadValidator(maxUploadSize),
	}
}

func (v *VerificationValidationService) Verify(ctx context.Context, upload models.Upload) (models.VerificationResult, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.VerificationResult{}, fmt.Errorf("upload validation failed: %w", err)
	}

	return v.inner.Verify(ctx, upload)
}

func (v *VerificationValidationService) GetVerification(ctx context.Context, id string) (models.VerificationRecord, error) {
	if id == "" {
		return models.VerificationRecord{}, ErrInvalidDataProvided
	}
	return v.inner.GetVerification(ctx, id)
}

func (v *VerificationValidationService) ListVerifications(ctx context.Context, limit int) ([]models.VerificationRecord, error) {
	return v.inner.ListVerifications(ctx, limit)
}

func (v *VerificationValidationService) Stats(ctx context.Context) (models.VerificationStats, error) {
	return v.inner.Stats(ctx)
}

func (v *VerificationValidationService) Health(ctx context.Context) models.HealthStatus {
	return v.inner.Health(ctx)
}

func (v *VerificationValidationService) Wrap(inner VerificationService) VerificationService {
	v.inner = inner
	return v
}
