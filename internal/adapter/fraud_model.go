package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
)

// MaxFraudAdjustment is the largest adjustment a fraud model may contribute.
const MaxFraudAdjustment = 25

type fraudModelRequest struct {
	SHA256   string `json:"sha256"`
	RiskHint string `json:"riskHint"`
}

type fraudModelResponse struct {
	Score *int `json:"score"`
}

type httpFraudModel struct {
	client *utils.HTTPClient
	url    string

	onFallback func()
	logger     *logger.Logger
}

// NewFraudModel returns a [FraudModel] calling cfg.URL, or a model that
// always returns 0 when cfg.Enabled is false. onFallback, when not nil, is
// invoked every time a call fails open.
func NewFraudModel(cfg config.FraudModel, onFallback func(), log *logger.Logger) FraudModel {
	if !cfg.Enabled || cfg.URL == "" {
		return noopFraudModel{}
	}

	return &httpFraudModel{
		client:     utils.NewHTTPClient(cfg.Timeout),
		url:        cfg.URL,
		onFallback: onFallback,
		logger:     log,
	}
}

// Score implements [FraudModel]. The request is bounded by the client
// timeout; on any error, non-2xx status or missing score the adjustment is 0.
func (m *httpFraudModel) Score(ctx context.Context, fingerprint, hint string) int {
	var result fraudModelResponse

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(fraudModelRequest{SHA256: fingerprint, RiskHint: hint}).
		SetResult(&result).
		Post(m.url)
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err == nil && result.Score == nil {
		err = fmt.Errorf("%w: no score in answer", ErrMalformedModelResponse)
	}
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "*httpFraudModel.Score").Msg("fraud model unavailable, using zero adjustment")
		if m.onFallback != nil {
			m.onFallback()
		}
		return 0
	}

	return min(max(*result.Score, 0), MaxFraudAdjustment)
}

type noopFraudModel struct{}

func (noopFraudModel) Score(context.Context, string, string) int { return 0 }
