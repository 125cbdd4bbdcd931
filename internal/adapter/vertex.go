package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
)

// VertexModel is a [VisionModel] backed by a Gemini model on Vertex AI.
// The model is configured for deterministic JSON output.
type VertexModel struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration

	logger *logger.Logger
}

// NewVertexModel creates a Vertex AI client and configures the generative
// model named in cfg.
func NewVertexModel(ctx context.Context, cfg config.Vertex, log *logger.Logger) (*VertexModel, error) {
	if cfg.ProjectID == "" || cfg.Location == "" {
		return nil, ErrInvalidVertexConfig
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(visionSystemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}
	// identity documents regularly trip the default filters on portraits
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
	}

	return &VertexModel{
		client:  client,
		model:   model,
		timeout: cfg.Timeout,
		logger:  log,
	}, nil
}

// Generate implements [VisionModel].
func (v *VertexModel) Generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	resp, err := v.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: image},
		genai.Text(prompt),
	)
	if err != nil {
		v.logger.Error().Err(err).Str("func", "*VertexModel.Generate").Msg("call to vertex ai failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyModelResponse
	}
	if isRefusal(text) {
		return "", ErrModelRefusal
	}

	return text, nil
}

// Close releases the underlying client.
func (v *VertexModel) Close() error {
	if v.client != nil {
		return v.client.Close()
	}
	return nil
}

// extractText concatenates the text parts of the first candidate and strips
// markdown code fences.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return trimFences(sb.String())
}

func trimFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var refusalPhrases = []string{
	"i am unable to",
	"i cannot fulfill",
	"i cannot answer",
	"as a large language model",
}

func isRefusal(s string) bool {
	lower := strings.ToLower(s)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// decodeModelJSON unmarshals a model answer into v.
func decodeModelJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(trimFences(raw)), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedModelResponse, err)
	}
	return nil
}
