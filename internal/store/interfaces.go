// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-id-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ObjectStorage keeps the raw bytes of uploaded documents.
type ObjectStorage interface {
	// Put stores data under a fresh key derived from name and returns the key.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)

	// Get returns the bytes stored under key, or [ErrObjectNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Bucket names the location objects are written to.
	Bucket() string

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// VerificationRepository persists verification records. Identity fields in
// the records it receives and returns are already encrypted.
type VerificationRepository interface {
	// Save upserts record by id. A record without id is assigned a new one
	// and a creation time; UpdatedAt is refreshed on every call. The stored
	// record is returned.
	Save(ctx context.Context, record models.VerificationRecord) (models.VerificationRecord, error)

	// GetByID returns the record with the given id, or
	// [ErrVerificationNotFound].
	GetByID(ctx context.Context, id string) (models.VerificationRecord, error)

	// ListRecent returns at most limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.VerificationRecord, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
