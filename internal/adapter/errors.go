package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Provider errors.
var (
	ErrEmptyModelResponse     = errors.New("model returned no content")
	ErrMalformedModelResponse = errors.New("model returned malformed content")
	ErrModelRefusal           = errors.New("model refused to answer")
	ErrUnsupportedImage       = errors.New("unsupported or corrupt image")
	ErrInvalidVertexConfig    = errors.New("vertex project and location are required")
)
