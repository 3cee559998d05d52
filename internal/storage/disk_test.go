package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Upload(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8420/storage/")
	ctx := context.Background()

	url, err := store.Upload(ctx, "1/1700000000000.jpg", []byte("jpeg-bytes"), "image/jpeg", false)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8420/storage/plant-images/1/1700000000000.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Root(), Bucket, "1", "1700000000000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestDiskStore_UploadNoUpsertConflict(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8420/storage")
	ctx := context.Background()

	_, err := store.Upload(ctx, "demo/plant1.jpg", []byte("first"), "image/jpeg", false)
	require.NoError(t, err)

	_, err = store.Upload(ctx, "demo/plant1.jpg", []byte("second"), "image/jpeg", false)
	assert.ErrorIs(t, err, ErrObjectExists)

	data, err := os.ReadFile(filepath.Join(store.Root(), Bucket, "demo", "plant1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data, "existing object must be left untouched")
}

func TestDiskStore_UploadUpsertOverwrites(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8420/storage")
	ctx := context.Background()

	_, err := store.Upload(ctx, "demo/plant1.jpg", []byte("first"), "image/jpeg", true)
	require.NoError(t, err)

	_, err = store.Upload(ctx, "demo/plant1.jpg", []byte("second"), "image/jpeg", true)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.Root(), Bucket, "demo", "plant1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestDiskStore_RejectsTraversalKeys(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "http://localhost:8420/storage")

	_, err := store.Upload(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg", false)
	assert.Error(t, err)

	_, err = store.Upload(context.Background(), "", []byte("x"), "image/jpeg", false)
	assert.Error(t, err)
}
