package store

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-id-verifier/internal/config"
	"github.com/MKhiriev/go-id-verifier/internal/logger"
)

// Storages groups the backends the verification pipeline writes to.
type Storages struct {
	Objects       ObjectStorage
	Verifications VerificationRepository

	closers []io.Closer
}

// NewStorages picks the backends from cfg: Firestore when a project is set,
// otherwise the SQL database; GCS when a bucket is set, otherwise the local
// uploads directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	if cfg.Firestore.ProjectID != "" {
		repo, err := NewFirestoreVerificationRepository(ctx, cfg.Firestore.ProjectID, cfg.Firestore.Collection, log)
		if err != nil {
			return nil, err
		}
		s.Verifications = repo
		s.closers = append(s.closers, repo)
	} else {
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.Verifications = NewVerificationRepository(db, log)
		s.closers = append(s.closers, db)
	}

	if cfg.GCS.Bucket != "" {
		objects, err := NewGCSObjectStorage(ctx, cfg.GCS.Bucket, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Objects = objects
		s.closers = append(s.closers, objects)
	} else {
		objects, err := NewFileObjectStorage(cfg.Files.UploadsDir, log)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.Objects = objects
	}

	log.Info().
		Str("objects", s.Objects.Bucket()).
		Bool("firestore", cfg.Firestore.ProjectID != "").
		Msg("storages initialised")

	return s, nil
}

// Close releases every backend connection.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
