package service

import "context"

// AssetStorage defines the interface for storing uploaded brand assets.
type AssetStorage interface {
	// Put writes an asset under the given key and returns its public path.
	Put(ctx context.Context, key string, contentType string, data []byte) (string, error)

	// Get reads an asset back by key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes an asset. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
