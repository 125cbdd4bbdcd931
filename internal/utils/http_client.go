package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-id-verifier"

// HTTPClient wraps [resty.Client] for outbound JSON calls to optional
// providers. Retries are disabled: a failed call is reported to the caller
// once.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent JSON client whose every request is
// bounded by timeout. A zero timeout means no client-side limit.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
