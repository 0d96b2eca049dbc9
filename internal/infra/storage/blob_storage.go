package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"folio/config"
	"folio/internal/domain/entity"
	"folio/internal/domain/lifecycle"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const localPublicPath = "/storage"

// BlobStorage is the gocloud.dev/blob backed ObjectStorage.
type BlobStorage struct {
	buckets    map[service.Bucket]*blob.Bucket
	names      map[service.Bucket]string
	publicBase string
}

// Params holds the dependencies of the object storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the gallery, OG and site buckets with the configured driver and closes them on shutdown.
func New(params Params) (service.ObjectStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	storage, err := Open(ctx, params.Config.Storage)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Object storage ready",
		slog.String("driver", params.Config.Storage.Driver),
		slog.String("public_base", storage.publicBase),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens every logical bucket with the configured driver.
func Open(ctx context.Context, cfg *config.StorageConfig) (*BlobStorage, error) {
	names := BucketNames(cfg)
	buckets := make(map[service.Bucket]*blob.Bucket, len(names))

	var open func(name string) (*blob.Bucket, error)
	switch cfg.Driver {
	case config.StorageDriverS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		open = func(name string) (*blob.Bucket, error) {
			return s3blob.OpenBucket(ctx, client, name, nil)
		}
	case config.StorageDriverFile:
		open = func(name string) (*blob.Bucket, error) {
			dir := strings.TrimRight(cfg.LocalDir, "/") + "/" + name
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrapf(err, "create %s", dir)
			}

			return fileblob.OpenBucket(dir, nil)
		}
	case config.StorageDriverMem:
		open = func(string) (*blob.Bucket, error) {
			return memblob.OpenBucket(nil), nil
		}
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}

	for logical, name := range names {
		bucket, err := open(name)
		if err != nil {
			for _, opened := range buckets {
				_ = opened.Close()
			}

			return nil, errors.Wrapf(err, "open bucket %s", name)
		}
		buckets[logical] = bucket
	}

	return newBlobStorage(buckets, names, publicBaseURL(cfg)), nil
}

func newBlobStorage(buckets map[service.Bucket]*blob.Bucket, names map[service.Bucket]string, publicBase string) *BlobStorage {
	return &BlobStorage{
		buckets:    buckets,
		names:      names,
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

// BucketNames maps logical buckets to their configured physical names.
func BucketNames(cfg *config.StorageConfig) map[service.Bucket]string {
	return map[service.Bucket]string{
		service.BucketGallery: cfg.Buckets.Gallery,
		service.BucketOG:      cfg.Buckets.OG,
		service.BucketSite:    cfg.Buckets.Site,
	}
}

func publicBaseURL(cfg *config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return cfg.PublicBaseURL
	case cfg.Driver != config.StorageDriverS3:
		return localPublicPath
	case cfg.Endpoint != "":
		return cfg.Endpoint
	default:
		return "https://s3." + cfg.Region + ".amazonaws.com"
	}
}

func (s *BlobStorage) bucket(b service.Bucket) (*blob.Bucket, error) {
	bucket, ok := s.buckets[b]
	if !ok {
		return nil, errors.Errorf("bucket %q is not configured", b)
	}

	return bucket, nil
}

func (s *BlobStorage) Upload(ctx context.Context, b service.Bucket, name string, data []byte, opts service.UploadOptions) (string, error) {
	bucket, err := s.bucket(b)
	if err != nil {
		return "", err
	}

	if !opts.Overwrite {
		exists, err := bucket.Exists(ctx, name)
		if err != nil {
			return "", errors.Wrapf(err, "check %s", name)
		}
		if exists {
			return "", errors.Wrap(service.ErrObjectExists, name)
		}
	}

	if err := bucket.WriteAll(ctx, name, data, &blob.WriterOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	}); err != nil {
		return "", errors.Wrapf(err, "write %s", name)
	}

	return s.PublicURL(b, name), nil
}

func (s *BlobStorage) Read(ctx context.Context, b service.Bucket, name string) ([]byte, error) {
	bucket, err := s.bucket(b)
	if err != nil {
		return nil, err
	}

	data, err := bucket.ReadAll(ctx, name)
	if err != nil {
		return nil, translate(err, name)
	}

	return data, nil
}

func (s *BlobStorage) Delete(ctx context.Context, b service.Bucket, name string) error {
	bucket, err := s.bucket(b)
	if err != nil {
		return err
	}

	return translate(bucket.Delete(ctx, name), name)
}

func (s *BlobStorage) Exists(ctx context.Context, b service.Bucket, name string) (bool, error) {
	bucket, err := s.bucket(b)
	if err != nil {
		return false, err
	}

	exists, err := bucket.Exists(ctx, name)

	return exists, errors.Wrapf(err, "check %s", name)
}

func (s *BlobStorage) List(ctx context.Context, b service.Bucket, prefix string) ([]*entity.StoredObject, error) {
	bucket, err := s.bucket(b)
	if err != nil {
		return nil, err
	}

	var objects []*entity.StoredObject
	iter := bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list objects")
		}
		if obj.IsDir {
			continue
		}
		objects = append(objects, &entity.StoredObject{
			Name:      obj.Key,
			URL:       s.PublicURL(b, obj.Key),
			Size:      obj.Size,
			UpdatedAt: obj.ModTime,
		})
	}

	return objects, nil
}

func (s *BlobStorage) PublicURL(b service.Bucket, name string) string {
	return s.bucketURL(b) + url.PathEscape(name)
}

func (s *BlobStorage) ObjectName(b service.Bucket, publicURL string) (string, bool) {
	if _, ok := s.names[b]; !ok {
		return "", false
	}

	trimmed := strings.TrimSpace(publicURL)
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	rest, ok := strings.CutPrefix(trimmed, s.bucketURL(b))
	if !ok || rest == "" {
		return "", false
	}

	name, err := url.PathUnescape(rest)
	if err != nil || name == "" || strings.Contains(name, "/") {
		return "", false
	}

	return name, true
}

// Close releases every opened bucket.
func (s *BlobStorage) Close() error {
	var errs []error
	for _, bucket := range s.buckets {
		if err := bucket.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *BlobStorage) bucketURL(b service.Bucket) string {
	return s.publicBase + "/" + s.names[b] + "/"
}

func translate(err error, name string) error {
	if err == nil {
		return nil
	}
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrap(service.ErrObjectNotFound, name)
	}

	return errors.Wrapf(err, "object %s", name)
}
