// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic behind the transport layer:
// the verification pipeline, statistics and health over the stored records,
// login and token handling, and build information.
package service

import (
	"context"

	"github.com/MKhiriev/go-id-verifier/models"
)

// VerificationService runs and reads back document verifications.
type VerificationService interface {
	// Verify runs the full pipeline for one upload and persists the
	// encrypted record. Identity fields in the result are plaintext.
	Verify(ctx context.Context, upload models.Upload) (models.VerificationResult, error)

	// GetVerification returns one record with its identity fields decrypted.
	GetVerification(ctx context.Context, id string) (models.VerificationRecord, error)

	// ListVerifications returns recent records with decrypted fields. A
	// non-positive limit means the default; larger limits are capped.
	ListVerifications(ctx context.Context, limit int) ([]models.VerificationRecord, error)

	// Stats summarises the most recent records.
	Stats(ctx context.Context) (models.VerificationStats, error)

	// Health reports connectivity of the object and record stores.
	Health(ctx context.Context) models.HealthStatus
}

// VerificationServiceWrapper decorates a VerificationService, for example
// with input validation.
type VerificationServiceWrapper interface {
	Wrap(VerificationService) VerificationService
}

type AuthService interface {
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) map[string]string
}
