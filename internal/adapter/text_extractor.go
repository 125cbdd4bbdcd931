package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/models"
)

type visionTextExtractor struct {
	model         VisionModel
	minConfidence float64

	logger *logger.Logger
}

// NewTextExtractor returns a [TextExtractor] that transcribes documents with
// model and keeps lines at or above cfg.MinConfidence.
func NewTextExtractor(model VisionModel, cfg config.OCR, log *logger.Logger) TextExtractor {
	return &visionTextExtractor{model: model, minConfidence: cfg.MinConfidence, logger: log}
}

type textResponse struct {
	Lines []struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"lines"`
}

func (e *visionTextExtractor) ExtractLines(ctx context.Context, data []byte) ([]models.TextLine, error) {
	raw, err := e.model.Generate(ctx, textDetectionPrompt, data, sniffContentType(data))
	if err != nil {
		return nil, fmt.Errorf("extract lines: %w", err)
	}

	var resp textResponse
	if err = decodeModelJSON(raw, &resp); err != nil {
		e.logger.Error().Err(err).Str("func", "*visionTextExtractor.ExtractLines").Msg("cannot decode text detection answer")
		return nil, err
	}

	lines := make([]models.TextLine, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		text := strings.TrimSpace(l.Text)
		if text == "" || l.Confidence < e.minConfidence {
			continue
		}
		lines = append(lines, models.TextLine{Content: text, Confidence: l.Confidence})
	}

	e.logger.Debug().Int("recognised", len(resp.Lines)).Int("kept", len(lines)).Msg("text lines extracted")
	return lines, nil
}
