// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var supportedDBDrivers = []string{"pgx", "sqlite3"}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants:
//   - the PII encryption secret and the token sign key are set;
//   - a record store (SQL DSN with a supported driver, or Firestore) and an
//     object store (uploads directory or GCS bucket) are configured;
//   - a Vertex AI project is configured, and a fraud model URL when the
//     model is enabled;
//   - at least one server address is set.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.EncryptionKey == "" {
		return fmt.Errorf("%w: encryption key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Firestore.ProjectID == "" {
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN or firestore project is required", ErrInvalidStorageConfigs)
		}
		if !slices.Contains(supportedDBDrivers, cfg.Storage.DB.Driver) {
			return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}
	if cfg.Storage.GCS.Bucket == "" && cfg.Storage.Files.UploadsDir == "" {
		return fmt.Errorf("%w: uploads directory or GCS bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Providers.Vertex.ProjectID == "" {
		return fmt.Errorf("%w: vertex project is required", ErrInvalidProviderConfigs)
	}
	if cfg.Providers.FraudModel.Enabled && cfg.Providers.FraudModel.URL == "" {
		return fmt.Errorf("%w: fraud model URL is required when the model is enabled", ErrInvalidProviderConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no server address", ErrInvalidServerConfigs)
	}

	return nil
}
