package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuildInfo = models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc123")

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, testBuildInfo, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, testBuildInfo, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, testBuildInfo, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, testBuildInfo, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, testBuildInfo, logger.Nop())
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())
	assert.Equal(t, map[string]string{
		"appVersion": "1.0.0",
		"version":    "1.4.0",
		"date":       "2026-10-01",
		"commit":     "abc123",
	}, info)

	// callers may not mutate the service's view
	info["version"] = "tampered"
	assert.Equal(t, "1.4.0", svc.GetBuildInfo(context.Background())["version"])
}
