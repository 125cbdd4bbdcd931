// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENCRYPTION_KEY": "pii_secret",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_USERS":          "alice:hash-a,bob:hash-b",
		"APP_ADMINS":         "alice",
		"APP_VERSION":        "1.0.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_GRPC_ADDRESS":    "localhost:9090",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_UPLOAD_SIZE": "1024",

		"STORAGE_DB_DRIVER":            "sqlite3",
		"STORAGE_DB_DATABASE_URI":      "file:verifier.db",
		"STORAGE_FILES_UPLOADS_DIR":    "/var/uploads",
		"STORAGE_GCS_BUCKET":           "id-documents",
		"STORAGE_FIRESTORE_PROJECT_ID": "fs-project",

		"PROVIDERS_VERTEX_PROJECT_ID":      "ai-project",
		"PROVIDERS_VERTEX_LOCATION":        "europe-west4",
		"PROVIDERS_OCR_MIN_CONFIDENCE":     "90",
		"PROVIDERS_FRAUD_MODEL_ENABLED":    "true",
		"PROVIDERS_FRAUD_MODEL_URL":        "http://fraud.local/score",
		"PROVIDERS_FRAUD_MODEL_TIMEOUT":    "500ms",
		"PROVIDERS_QUALITY_BLUR_THRESHOLD": "80",
		"PROVIDERS_QUALITY_MIN_BRIGHTNESS": "40",
		"PROVIDERS_QUALITY_MAX_BRIGHTNESS": "230",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "pii_secret", cfg.App.EncryptionKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, map[string]string{"alice": "hash-a", "bob": "hash-b"}, cfg.App.Users)
	assert.Equal(t, []string{"alice"}, cfg.App.Admins)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadSize)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:verifier.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/uploads", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, "id-documents", cfg.Storage.GCS.Bucket)
	assert.Equal(t, "fs-project", cfg.Storage.Firestore.ProjectID)

	assert.Equal(t, "ai-project", cfg.Providers.Vertex.ProjectID)
	assert.Equal(t, "europe-west4", cfg.Providers.Vertex.Location)
	assert.Equal(t, 90.0, cfg.Providers.OCR.MinConfidence)
	assert.True(t, cfg.Providers.FraudModel.Enabled)
	assert.Equal(t, "http://fraud.local/score", cfg.Providers.FraudModel.URL)
	assert.Equal(t, 500*time.Millisecond, cfg.Providers.FraudModel.Timeout)
	assert.Equal(t, 80.0, cfg.Providers.Quality.BlurThreshold)
	assert.Equal(t, 40.0, cfg.Providers.Quality.MinBrightness)
	assert.Equal(t, 230.0, cfg.Providers.Quality.MaxBrightness)
}

func TestParseEnv_Defaults(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.App.EncryptionKey)
	assert.Equal(t, "go-id-verifier", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, "verifications", cfg.Storage.Firestore.Collection)

	assert.Equal(t, "us-central1", cfg.Providers.Vertex.Location)
	assert.Equal(t, "gemini-1.5-pro", cfg.Providers.Vertex.Model)
	assert.Equal(t, 30*time.Second, cfg.Providers.Vertex.Timeout)
	assert.Equal(t, 80.0, cfg.Providers.OCR.MinConfidence)
	assert.False(t, cfg.Providers.FraudModel.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Providers.FraudModel.Timeout)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadSize)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Empty(t, cfg.App.EncryptionKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Nil(t, cfg.App.Users)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Storage.Files.UploadsDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "APP_TOKEN_DURATION", "invalid_duration"},
		{"bool", "PROVIDERS_FRAUD_MODEL_ENABLED", "maybe"},
		{"float", "PROVIDERS_OCR_MIN_CONFIDENCE", "high"},
		{"int", "SERVER_MAX_UPLOAD_SIZE", "ten megabytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",

	"APP_ENCRYPTION_KEY",
	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_USERS",
	"APP_ADMINS",
	"APP_VERSION",

	"SERVER_ADDRESS",
	"SERVER_GRPC_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_MAX_UPLOAD_SIZE",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_FILES_UPLOADS_DIR",
	"STORAGE_GCS_BUCKET",
	"STORAGE_FIRESTORE_PROJECT_ID",
	"STORAGE_FIRESTORE_COLLECTION",

	"PROVIDERS_VERTEX_PROJECT_ID",
	"PROVIDERS_VERTEX_LOCATION",
	"PROVIDERS_VERTEX_MODEL",
	"PROVIDERS_VERTEX_TIMEOUT",
	"PROVIDERS_OCR_MIN_CONFIDENCE",
	"PROVIDERS_QUALITY_BLUR_THRESHOLD",
	"PROVIDERS_QUALITY_MIN_BRIGHTNESS",
	"PROVIDERS_QUALITY_MAX_BRIGHTNESS",
	"PROVIDERS_FRAUD_MODEL_ENABLED",
	"PROVIDERS_FRAUD_MODEL_URL",
	"PROVIDERS_FRAUD_MODEL_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
