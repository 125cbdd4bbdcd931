package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing secrets (encryption key,
	// token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates that no usable record store or
	// object store is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidProviderConfigs indicates invalid analysis provider settings.
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidServerConfigs indicates that no server would be started.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
