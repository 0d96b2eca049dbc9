package service

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Bucket names a logical storage area. The physical bucket is chosen by configuration.
type Bucket string

const (
	BucketGallery Bucket = "gallery"
	BucketOG      Bucket = "og"
	BucketSite    Bucket = "site"
)

var (
	// ErrObjectNotFound is returned when a named object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectExists is returned when an upload would overwrite an object without permission.
	ErrObjectExists = errors.New("object already exists")
)

// UploadOptions controls how an object is written.
type UploadOptions struct {
	ContentType  string
	CacheControl string
	Overwrite    bool // Replace an existing object of the same name instead of failing with ErrObjectExists.
}

// ObjectStorage is the managed object store holding gallery images, OG images and site assets.
type ObjectStorage interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, bucket Bucket, name string, data []byte, opts UploadOptions) (string, error)

	// Read returns the object contents.
	Read(ctx context.Context, bucket Bucket, name string) ([]byte, error)

	// Delete removes the object, failing with ErrObjectNotFound when it is absent.
	Delete(ctx context.Context, bucket Bucket, name string) error

	// Exists reports whether the object is present.
	Exists(ctx context.Context, bucket Bucket, name string) (bool, error)

	// List returns the objects whose name starts with prefix.
	List(ctx context.Context, bucket Bucket, prefix string) ([]*entity.StoredObject, error)

	// PublicURL returns the URL under which the object is publicly served.
	PublicURL(bucket Bucket, name string) string

	// ObjectName returns the object name when publicURL points into the bucket.
	ObjectName(bucket Bucket, publicURL string) (string, bool)
}
