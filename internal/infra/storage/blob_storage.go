// Package storage adapts a gocloud.dev blob bucket into the image storage
// provider the upload flow depends on.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes available in production deployments.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"

	"swipedeck/config"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/lifecycle"
	"swipedeck/internal/domain/service"
	"swipedeck/internal/errors"
)

// blobStorage implements service.ImageStorage on top of a blob bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the dependencies for the blob storage adapter.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its shutdown into the fx lifecycle.
func New(params Params) (service.ImageStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

// NewWithBucket builds the adapter around an already-open bucket.
// Tests use this with an in-memory bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ImageStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the image under a fresh key and returns its public URL.
// The whole buffer is written before anything is returned; there is no
// callback path and no partial success.
func (s *blobStorage) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrNoFileUploaded.WrapMessage("empty image buffer")
	}

	key := uuid.New().String()

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		s.logger.Error("image write failed", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WrapMessage("failed to write image to bucket")
	}

	return s.publicBaseURL + "/" + key, nil
}
