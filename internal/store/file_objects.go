package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/utils"
)

// localBucket is reported as the bucket of objects kept on local disk.
const localBucket = "local"

// fileObjectStorage implements [ObjectStorage] on a local directory. It is
// used when no GCS bucket is configured.
type fileObjectStorage struct {
	root   string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewFileObjectStorage creates root if needed and returns an [ObjectStorage]
// writing beneath it.
func NewFileObjectStorage(root string, log *logger.Logger) (ObjectStorage, error) {
	if err := os.MkdirAll(filepath.Join(root, uploadsPrefix), 0o750); err != nil {
		log.Error().Err(err).Str("func", "NewFileObjectStorage").Str("root", root).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	return &fileObjectStorage{
		root:   root,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func (s *fileObjectStorage) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(s.ids.Generate(), name)
	f, err := os.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrObjectExists, key)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("func", "*fileObjectStorage.Put").Str("key", key).Msg("error creating object file")
		return "", err
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(s.path(key))
		s.logger.Error().Err(err).Str("func", "*fileObjectStorage.Put").Str("key", key).Msg("error writing object file")
		return "", err
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(s.path(key))
		return "", err
	}

	s.logger.Debug().Str("key", key).Str("content_type", contentType).Int("bytes", len(data)).Msg("object stored")
	return key, nil
}

func (s *fileObjectStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateObjectKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return data, err
}

func (s *fileObjectStorage) Bucket() string {
	return localBucket
}

func (s *fileObjectStorage) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.root)
	}
	return nil
}

func (s *fileObjectStorage) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
