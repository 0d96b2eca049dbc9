package storage

import (
	"context"
	"testing"

	"folio/config"
	"folio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *BlobStorage {
	t.Helper()

	storage := newBlobStorage(
		map[service.Bucket]*blob.Bucket{
			service.BucketGallery: memblob.OpenBucket(nil),
			service.BucketOG:      memblob.OpenBucket(nil),
			service.BucketSite:    memblob.OpenBucket(nil),
		},
		map[service.Bucket]string{
			service.BucketGallery: "gallery",
			service.BucketOG:      "og-images",
			service.BucketSite:    "site",
		},
		"https://cdn.example.com/",
	)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestBlobStorage_UploadReadDelete(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	publicURL, err := storage.Upload(ctx, service.BucketGallery, "gallery-1.png", []byte("png"), service.UploadOptions{
		ContentType:  "image/png",
		CacheControl: "public, max-age=31536000, immutable",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/gallery/gallery-1.png", publicURL)

	data, err := storage.Read(ctx, service.BucketGallery, "gallery-1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	attrs, err := storage.buckets[service.BucketGallery].Attributes(ctx, "gallery-1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, "public, max-age=31536000, immutable", attrs.CacheControl)

	require.NoError(t, storage.Delete(ctx, service.BucketGallery, "gallery-1.png"))

	_, err = storage.Read(ctx, service.BucketGallery, "gallery-1.png")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
	assert.ErrorIs(t, storage.Delete(ctx, service.BucketGallery, "gallery-1.png"), service.ErrObjectNotFound)
}

func TestBlobStorage_UploadNeverOverwritesByDefault(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	_, err := storage.Upload(ctx, service.BucketSite, "favicon.ico", []byte("v1"), service.UploadOptions{})
	require.NoError(t, err)

	_, err = storage.Upload(ctx, service.BucketSite, "favicon.ico", []byte("v2"), service.UploadOptions{})
	assert.ErrorIs(t, err, service.ErrObjectExists)

	_, err = storage.Upload(ctx, service.BucketSite, "favicon.ico", []byte("v3"), service.UploadOptions{Overwrite: true})
	require.NoError(t, err)

	data, err := storage.Read(ctx, service.BucketSite, "favicon.ico")
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), data)
}

func TestBlobStorage_List(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	for _, name := range []string{"og-1.jpg", "og-2.png", "other.txt"} {
		_, err := storage.Upload(ctx, service.BucketOG, name, []byte(name), service.UploadOptions{})
		require.NoError(t, err)
	}

	objects, err := storage.List(ctx, service.BucketOG, "og-")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "og-1.jpg", objects[0].Name)
	assert.Equal(t, "https://cdn.example.com/og-images/og-1.jpg", objects[0].URL)
	assert.Equal(t, int64(len("og-1.jpg")), objects[0].Size)
	assert.False(t, objects[0].UpdatedAt.IsZero())
}

func TestBlobStorage_ObjectName(t *testing.T) {
	storage := newTestStorage(t)

	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{name: "managed", url: "https://cdn.example.com/gallery/a.png", want: "a.png", wantOK: true},
		{name: "query stripped", url: "https://cdn.example.com/gallery/a.png?v=2", want: "a.png", wantOK: true},
		{name: "escaped", url: "https://cdn.example.com/gallery/a%20b.png", want: "a b.png", wantOK: true},
		{name: "other bucket", url: "https://cdn.example.com/og-images/a.png"},
		{name: "external", url: "https://example.com/a.png"},
		{name: "nested path", url: "https://cdn.example.com/gallery/x/a.png"},
		{name: "bucket root", url: "https://cdn.example.com/gallery/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := storage.ObjectName(service.BucketGallery, tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_MemDriver(t *testing.T) {
	cfg := &config.StorageConfig{
		Driver:  config.StorageDriverMem,
		Buckets: config.StorageBuckets{Gallery: "g", OG: "o", Site: "s"},
	}

	storage, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer storage.Close()

	assert.Equal(t, "/storage/g/x.png", storage.PublicURL(service.BucketGallery, "x.png"))
}

func TestOpen_FileDriverCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StorageConfig{
		Driver:        config.StorageDriverFile,
		LocalDir:      dir,
		PublicBaseURL: "http://localhost:8080/storage",
		Buckets:       config.StorageBuckets{Gallery: "gallery", OG: "og-images", Site: "site"},
	}

	storage, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer storage.Close()

	publicURL, err := storage.Upload(context.Background(), service.BucketGallery, "a.png", []byte("x"), service.UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/storage/gallery/a.png", publicURL)
	assert.FileExists(t, dir+"/gallery/a.png")
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		publicBaseURL(&config.StorageConfig{Driver: config.StorageDriverS3, PublicBaseURL: "https://cdn.example.com"}))
	assert.Equal(t, "http://minio:9000",
		publicBaseURL(&config.StorageConfig{Driver: config.StorageDriverS3, Endpoint: "http://minio:9000"}))
	assert.Equal(t, "https://s3.eu-west-1.amazonaws.com",
		publicBaseURL(&config.StorageConfig{Driver: config.StorageDriverS3, Region: "eu-west-1"}))
	assert.Equal(t, "/storage", publicBaseURL(&config.StorageConfig{Driver: config.StorageDriverFile}))
}
