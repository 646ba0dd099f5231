// Package storage implements photo storage on a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// GCS driver for production buckets ("gs://...").
	_ "gocloud.dev/blob/gcsblob"

	"placemark/config"
	domainerrors "placemark/internal/domain/errors"
	"placemark/internal/domain/service"
)

// photoStorage implements service.PhotoStorage.
type photoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the photo storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the photo bucket. When the backend is not configured the
// storage stays inert and every operation fails fast with the
// configuration error.
func New(params Params) (service.PhotoStorage, error) {
	cfg := params.Config

	if !cfg.Firebase.Configured() || cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		params.Logger.Warn("photo storage not configured, uploads are disabled")

		return &photoStorage{logger: params.Logger}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.Storage.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket, cfg.Storage.PublicBaseURL, params.Logger), nil
}

// NewWithBucket wires an already-open bucket; used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.PhotoStorage {
	return &photoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *photoStorage) ensureConfigured() error {
	if s.bucket == nil {
		return errors.WithStack(domainerrors.ErrBackendNotConfigured)
	}

	return nil
}

// Upload writes the object and returns its resolved public URL. The URL is
// only returned once the write has completed, so callers can order the
// record write that references it strictly after the upload.
func (s *photoStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.ensureConfigured(); err != nil {
		return "", err
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := writer.Write(data); err != nil {
		// Close discards the partial write; the write error is the one worth surfacing.
		_ = writer.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finish object %s", key)
	}

	return s.resolveURL(key), nil
}

// Delete removes the object at key.
func (s *photoStorage) Delete(ctx context.Context, key string) error {
	if err := s.ensureConfigured(); err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// KeyFromURL maps a resolved public URL back to its object key. Deletion of
// orphaned photos works from the URL stored on the record, so this is the
// inverse of resolveURL.
func (s *photoStorage) KeyFromURL(url string) (string, bool) {
	if s.publicBaseURL == "" {
		return "", false
	}

	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}

	return key, true
}

func (s *photoStorage) resolveURL(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + key
}
