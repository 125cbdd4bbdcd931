package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"encryption_key": "pii_secret",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"users": { "alice": "$2a$10$hash" },
			"admins": ["alice"],
			"version": "1.2.3"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"max_upload_size": 4096
		},
		"storage": {
			"db": { "driver": "sqlite3", "dsn": "file:verifier.db" },
			"files": { "uploads_dir": "/var/uploads" },
			"gcs": { "bucket": "id-documents" },
			"firestore": { "project_id": "fs-project", "collection": "records" }
		},
		"providers": {
			"vertex": { "project_id": "ai-project", "location": "us-east1", "model": "gemini-1.5-flash", "timeout": "10s" },
			"ocr": { "min_confidence": 75 },
			"quality": { "blur_threshold": 120, "min_brightness": 50, "max_brightness": 220 },
			"fraud_model": { "enabled": true, "url": "http://fraud.local/score", "timeout": "1s" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pii_secret", cfg.App.EncryptionKey)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, map[string]string{"alice": "$2a$10$hash"}, cfg.App.Users)
	assert.Equal(t, []string{"alice"}, cfg.App.Admins)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxUploadSize)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:verifier.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/uploads", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, "id-documents", cfg.Storage.GCS.Bucket)
	assert.Equal(t, "fs-project", cfg.Storage.Firestore.ProjectID)
	assert.Equal(t, "records", cfg.Storage.Firestore.Collection)

	assert.Equal(t, "ai-project", cfg.Providers.Vertex.ProjectID)
	assert.Equal(t, "us-east1", cfg.Providers.Vertex.Location)
	assert.Equal(t, "gemini-1.5-flash", cfg.Providers.Vertex.Model)
	assert.Equal(t, 10*time.Second, cfg.Providers.Vertex.Timeout)
	assert.Equal(t, 75.0, cfg.Providers.OCR.MinConfidence)
	assert.Equal(t, 120.0, cfg.Providers.Quality.BlurThreshold)
	assert.Equal(t, 50.0, cfg.Providers.Quality.MinBrightness)
	assert.Equal(t, 220.0, cfg.Providers.Quality.MaxBrightness)
	assert.True(t, cfg.Providers.FraudModel.Enabled)
	assert.Equal(t, "http://fraud.local/score", cfg.Providers.FraudModel.URL)
	assert.Equal(t, time.Second, cfg.Providers.FraudModel.Timeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"app": { "token_duration": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"providers":{"fraud_model":{"timeout":1500000000}}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Providers.FraudModel.Timeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Providers{}, cfg.Providers)
}
