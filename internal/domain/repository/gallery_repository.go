package repository

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGalleryImageNotFound is returned when a gallery row does not exist.
var ErrGalleryImageNotFound = errors.New("gallery image not found")

// GalleryRepository persists gallery ticker rows.
type GalleryRepository interface {
	// List returns every row ordered by row_number, position and id.
	List(ctx context.Context) ([]*entity.GalleryImage, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error)

	// FindByPlacement returns the rows of a ticker row, narrowed to one position when position is not nil.
	FindByPlacement(ctx context.Context, rowNumber int, position *int) ([]*entity.GalleryImage, error)

	// CountByImageURL reports how many rows point at imageURL.
	CountByImageURL(ctx context.Context, imageURL string) (int64, error)

	Create(ctx context.Context, image *entity.GalleryImage) error

	// UpdateURL replaces the image URL of one row.
	UpdateURL(ctx context.Context, id uuid.UUID, imageURL string) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDs removes the given rows and returns how many were deleted.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
