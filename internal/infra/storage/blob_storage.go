// Package storage keeps uploaded brand assets in a blob bucket.
package storage

import (
	"context"
	"io"

	"epro/config"
	"epro/internal/domain/lifecycle"
	"epro/internal/domain/service"
	"epro/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register drivers for the bucket URLs used in deployments and tests.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorage implements service.AssetStorage on top of a gocloud bucket, so
// the same code serves a local directory in development and a cloud bucket in
// production by changing one URL.
type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config) (service.AssetStorage, error) {
	if cfg == nil || cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open asset bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket}, nil
}

// NewBlobStorageFromBucket wraps an already-open bucket. Used by tests.
func NewBlobStorageFromBucket(bucket *blob.Bucket) service.AssetStorage {
	return &blobStorage{bucket: bucket}
}

// Put writes an asset under the given key and returns its public path.
func (s *blobStorage) Put(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write asset")
	}

	return "/assets/" + key, nil
}

// Get reads an asset back by key.
func (s *blobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open asset")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read asset")
	}

	return data, nil
}

// Delete removes an asset. Deleting a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete asset")
	}

	return nil
}
