package service

import "errors"

// Pipeline stage failures. The underlying collaborator error is wrapped as
// "%w: %w" so both can be matched with [errors.Is].
var (
	ErrObjectStorage  = errors.New("object storage failure")
	ErrImageAnalysis  = errors.New("image analysis failure")
	ErrTextExtraction = errors.New("text extraction failure")
	ErrPersistRecord  = errors.New("failed to persist verification record")
	ErrProtectFields  = errors.New("failed to protect identity fields")
	ErrReadRecord     = errors.New("failed to read verification record")
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongCredentials        = errors.New("wrong username or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("application version is not specified")
)
