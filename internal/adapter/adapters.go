package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/metrics"
)

// Adapters aggregates the outbound integrations of the pipeline.
type Adapters struct {
	ImageAnalyzer ImageAnalyzer
	TextExtractor TextExtractor
	FraudModel    FraudModel

	vertex *VertexModel
}

// NewAdapters builds every adapter from cfg. A single Vertex AI client backs
// both image analysis and text extraction.
func NewAdapters(ctx context.Context, cfg config.Providers, m *metrics.Metrics, log *logger.Logger) (*Adapters, error) {
	vertex, err := NewVertexModel(ctx, cfg.Vertex, log)
	if err != nil {
		return nil, fmt.Errorf("error creating vertex model: %w", err)
	}

	return &Adapters{
		ImageAnalyzer: NewImageAnalyzer(vertex, cfg.Quality, log),
		TextExtractor: NewTextExtractor(vertex, cfg.OCR, log),
		FraudModel:    NewFraudModel(cfg.FraudModel, m.IncrementFraudModelFallback, log),
		vertex:        vertex,
	}, nil
}

// Close releases provider clients.
func (a *Adapters) Close() error {
	if a.vertex != nil {
		return a.vertex.Close()
	}
	return nil
}
