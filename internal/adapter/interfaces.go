// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations the verification
// pipeline depends on: image analysis, text recognition and the optional
// external fraud model.
//
// Face detection, moderation and OCR are served by a multimodal Vertex AI
// model ([NewVertexModel]); image dimensions and quality measures are
// computed locally from the decoded image. The fraud model is an HTTP
// endpoint reached via resty and is fail-open by contract.
//
// Error values defined in errors.go let callers use [errors.Is] regardless
// of the provider behind an interface.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-id-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ImageAnalyzer inspects a document image.
type ImageAnalyzer interface {
	// DetectFaces reports whether the image contains faces, how many, and
	// the best per-face confidence.
	DetectFaces(ctx context.Context, data []byte) (models.FaceDetection, error)

	// DetectTampering reports suspicious or manipulated content together
	// with the decoded image dimensions.
	DetectTampering(ctx context.Context, data []byte) (models.TamperDetection, error)

	// AnalyzeQuality reports blur, lighting and whether the image looks like
	// an identity document.
	AnalyzeQuality(ctx context.Context, data []byte) (models.QualityAnalysis, error)
}

// TextExtractor recognises printed text lines in a document image.
type TextExtractor interface {
	// ExtractLines returns recognised lines in reading order. Lines below
	// the configured confidence are dropped.
	ExtractLines(ctx context.Context, data []byte) ([]models.TextLine, error)
}

// FraudModel is an optional external scoring model.
type FraudModel interface {
	// Score returns an additive risk adjustment in 0..25 for the document
	// identified by fingerprint. hint is the preliminary tier. Any failure
	// yields 0; Score never returns an error.
	Score(ctx context.Context, fingerprint, hint string) int
}

// VisionModel sends a single image together with an instruction to a
// multimodal model and returns the raw text answer.
type VisionModel interface {
	Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}
