package usecase

import (
	"context"

	"folio/internal/domain/entity"
)

// FileInput is an uploaded file read into memory. ContentType is the client declared type and may be empty.
type FileInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadedAsset names a stored site asset.
type UploadedAsset struct {
	Name string
	URL  string
}

// AssetUsecase manages the favicon and Open Graph images.
type AssetUsecase interface {
	UploadFavicon(ctx context.Context, file *FileInput) (*UploadedAsset, error)
	UploadOGImage(ctx context.Context, file *FileInput) (*UploadedAsset, error)
	// ListOGImages returns the stored OG images, newest first.
	ListOGImages(ctx context.Context) ([]*entity.StoredObject, error)
	DeleteOGImage(ctx context.Context, name string) error
}

// MetadataUsecase publishes the page metadata snapshot consumed by the presentation layer.
type MetadataUsecase interface {
	Publish(ctx context.Context) (*entity.MetadataSnapshot, error)
	GetPublished(ctx context.Context) (*entity.MetadataSnapshot, error)
}
