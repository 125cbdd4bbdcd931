package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLines(t *testing.T) {
	const raw = `{"lines": [
		{"text": "IDENTITY CARD", "confidence": 99.1},
		{"text": "Name", "confidence": 95},
		{"text": "  JOHN SMITH  ", "confidence": 80},
		{"text": "smudge", "confidence": 42.5},
		{"text": "", "confidence": 99}
	]}`

	e := NewTextExtractor(answer(raw), config.OCR{MinConfidence: 80}, logger.Nop())

	lines, err := e.ExtractLines(context.Background(), []byte("img"))

	require.NoError(t, err)
	assert.Equal(t, []models.TextLine{
		{Content: "IDENTITY CARD", Confidence: 99.1},
		{Content: "Name", Confidence: 95},
		{Content: "JOHN SMITH", Confidence: 80},
	}, lines)
}

func TestExtractLines_Empty(t *testing.T) {
	e := NewTextExtractor(answer(`{"lines": []}`), config.OCR{MinConfidence: 80}, logger.Nop())

	lines, err := e.ExtractLines(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestExtractLines_Errors(t *testing.T) {
	t.Run("model failure", func(t *testing.T) {
		e := NewTextExtractor(failing(ErrEmptyModelResponse), config.OCR{}, logger.Nop())
		_, err := e.ExtractLines(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyModelResponse)
	})

	t.Run("malformed answer", func(t *testing.T) {
		e := NewTextExtractor(answer(`{"lines": "JOHN"}`), config.OCR{}, logger.Nop())
		_, err := e.ExtractLines(context.Background(), nil)
		assert.ErrorIs(t, err, ErrMalformedModelResponse)
	})
}
