package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/models"
)

// minLabelConfidence drops moderation labels the model is unsure about.
const minLabelConfidence = 50.0

type visionImageAnalyzer struct {
	model   VisionModel
	quality config.Quality

	logger *logger.Logger
}

// NewImageAnalyzer returns an [ImageAnalyzer] that asks model for faces and
// moderation labels and measures dimensions and quality locally.
func NewImageAnalyzer(model VisionModel, quality config.Quality, log *logger.Logger) ImageAnalyzer {
	return &visionImageAnalyzer{model: model, quality: quality, logger: log}
}

type faceResponse struct {
	Faces []struct {
		Confidence float64 `json:"confidence"`
	} `json:"faces"`
}

type moderationResponse struct {
	Labels []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	} `json:"labels"`
	Manipulated bool `json:"manipulated"`
}

func (a *visionImageAnalyzer) DetectFaces(ctx context.Context, data []byte) (models.FaceDetection, error) {
	raw, err := a.model.Generate(ctx, faceDetectionPrompt, data, sniffContentType(data))
	if err != nil {
		return models.FaceDetection{}, fmt.Errorf("detect faces: %w", err)
	}

	var resp faceResponse
	if err = decodeModelJSON(raw, &resp); err != nil {
		a.logger.Error().Err(err).Str("func", "*visionImageAnalyzer.DetectFaces").Msg("cannot decode face detection answer")
		return models.FaceDetection{}, err
	}

	result := models.FaceDetection{
		FaceDetected: len(resp.Faces) > 0,
		FaceCount:    len(resp.Faces),
	}
	for _, f := range resp.Faces {
		if result.HighestConfidence == nil || f.Confidence > *result.HighestConfidence {
			c := f.Confidence
			result.HighestConfidence = &c
		}
	}

	return result, nil
}

func (a *visionImageAnalyzer) DetectTampering(ctx context.Context, data []byte) (models.TamperDetection, error) {
	width, height, err := decodeDimensions(data)
	if err != nil {
		return models.TamperDetection{}, err
	}

	raw, err := a.model.Generate(ctx, moderationPrompt, data, sniffContentType(data))
	if err != nil {
		return models.TamperDetection{}, fmt.Errorf("detect tampering: %w", err)
	}

	var resp moderationResponse
	if err = decodeModelJSON(raw, &resp); err != nil {
		a.logger.Error().Err(err).Str("func", "*visionImageAnalyzer.DetectTampering").Msg("cannot decode moderation answer")
		return models.TamperDetection{}, err
	}

	var labels []string
	for _, l := range resp.Labels {
		name := strings.TrimSpace(l.Name)
		if name == "" || l.Confidence < minLabelConfidence {
			continue
		}
		labels = append(labels, name)
	}

	suspicious := len(labels) > 0
	return models.TamperDetection{
		Tampered:          suspicious || resp.Manipulated,
		SuspiciousContent: suspicious,
		Labels:            labels,
		ImageWidth:        width,
		ImageHeight:       height,
	}, nil
}

func (a *visionImageAnalyzer) AnalyzeQuality(ctx context.Context, data []byte) (models.QualityAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return models.QualityAnalysis{}, err
	}

	img, err := decodeImage(data)
	if err != nil {
		return models.QualityAnalysis{}, err
	}

	stats := measure(img)
	a.logger.Debug().
		Int("width", stats.Width).
		Int("height", stats.Height).
		Float64("sharpness", stats.Sharpness).
		Float64("brightness", stats.Brightness).
		Msg("image quality measured")

	return models.QualityAnalysis{
		Blurry:       stats.Sharpness < a.quality.BlurThreshold,
		GoodLighting: stats.Brightness >= a.quality.MinBrightness && stats.Brightness <= a.quality.MaxBrightness,
		DocumentLike: stats.DocumentLike(),
	}, nil
}
