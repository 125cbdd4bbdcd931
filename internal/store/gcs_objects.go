package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
)

// gcsObjectStorage implements [ObjectStorage] on a Google Cloud Storage
// bucket. Objects are created with a does-not-exist precondition, so an
// existing object is never replaced.
type gcsObjectStorage struct {
	client *storage.Client
	bucket string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewGCSObjectStorage opens a storage client using application default
// credentials.
func NewGCSObjectStorage(ctx context.Context, bucket string, log *logger.Logger) (*gcsObjectStorage, error) {
	if bucket == "" {
		return nil, errors.New("bucket must be provided to create a storage client")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		log.Error().Err(err).Str("func", "NewGCSObjectStorage").Msg("failed to create storage client")
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &gcsObjectStorage{
		client: client,
		bucket: bucket,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func (s *gcsObjectStorage) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := objectKey(s.ids.Generate(), name)

	w := s.client.Bucket(s.bucket).Object(key).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", s.writeError(key, err)
	}
	if err := w.Close(); err != nil {
		return "", s.writeError(key, err)
	}

	return key, nil
}

func (s *gcsObjectStorage) writeError(key string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed {
		return fmt.Errorf("%w: %s", ErrObjectExists, key)
	}

	s.logger.Error().Err(err).Str("func", "*gcsObjectStorage.Put").Str("bucket", s.bucket).Str("key", key).Msg("failed to write object")
	return fmt.Errorf("failed to write to GCS: %w", err)
}

func (s *gcsObjectStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateObjectKey(key); err != nil {
		return nil, err
	}

	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object: %w", err)
	}
	defer r.Close()

	return io.ReadAll(r)
}

func (s *gcsObjectStorage) Bucket() string {
	return s.bucket
}

func (s *gcsObjectStorage) Ping(ctx context.Context) error {
	_, err := s.client.Bucket(s.bucket).Attrs(ctx)
	return err
}

func (s *gcsObjectStorage) Close() error {
	return s.client.Close()
}
