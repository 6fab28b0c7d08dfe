package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorageFromBucket(bucket)

	path, err := store.Put(ctx, "branding/logo-v2.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/assets/branding/logo-v2.png", path)

	data, err := store.Get(ctx, "branding/logo-v2.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ctx, "branding/logo-v2.png"))

	_, err = store.Get(ctx, "branding/logo-v2.png")
	assert.Error(t, err)
}

func TestBlobStorage_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorageFromBucket(bucket)

	assert.NoError(t, store.Delete(ctx, "branding/never-existed.png"))
}
