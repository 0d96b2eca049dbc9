package usecase

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// Import actions.
const (
	ImportActionCreate = "create"
	ImportActionUpdate = "update"
	ImportActionDelete = "delete"
)

// MigrationStatus is the outcome of migrating one gallery row.
type MigrationStatus string

const (
	MigrationSuccess MigrationStatus = "success"
	MigrationSkipped MigrationStatus = "skipped"
	MigrationFailed  MigrationStatus = "failed"
)

// GalleryListOutput is the sanitized gallery.
type GalleryListOutput struct {
	Images []*entity.GalleryImage
	// RemovedTransient counts rows hidden because their URL only existed in a browser session.
	RemovedTransient int
}

// CreateGalleryImageInput inserts a row that points at an already hosted image.
type CreateGalleryImageInput struct {
	RowNumber int
	Position  int
	ImageURL  string
}

// UploadGalleryImageInput carries a file posted by the admin UI.
// A row is only inserted when RowNumber is set.
type UploadGalleryImageInput struct {
	File      *FileInput
	RowNumber *int
	Position  int
}

// UploadGalleryImageOutput describes the stored object and the inserted row, if any.
type UploadGalleryImageOutput struct {
	Name  string
	URL   string
	Image *entity.GalleryImage
}

// ImportItem is one entry of an import batch. Targets resolve by ID first, then by row and position.
type ImportItem struct {
	Action    string
	ID        *uuid.UUID
	RowNumber *int
	Position  *int
	URL       string
}

// ImportItemResult reports the outcome of one item, in input order.
type ImportItemResult struct {
	Index     int
	Action    string
	OK        bool
	ID        *uuid.UUID
	RowNumber *int
	URL       string
	PublicURL string
	Reason    string
	Detail    string
	Record    *entity.GalleryImage
}

// ImportOutput collects per-item results.
type ImportOutput struct {
	Results   []*ImportItemResult
	Succeeded int
	Failed    int
}

// CleanupInput selects the optional storage sweep.
type CleanupInput struct {
	PurgeOrphans bool
}

// CleanupOutput summarises a cleanup sweep.
type CleanupOutput struct {
	DeletedIDs        []uuid.UUID
	RemovedTransient  int
	RemovedDuplicates int
	PurgedObjects     int
}

// DeletedCount is the number of rows removed.
func (o *CleanupOutput) DeletedCount() int {
	return len(o.DeletedIDs)
}

// MigrationResult is the outcome for one row.
type MigrationResult struct {
	ID          uuid.UUID
	RowNumber   int
	Position    int
	OriginalURL string
	NewURL      string
	Status      MigrationStatus
	Reason      string
}

// MigrationSummary counts results by status.
type MigrationSummary struct {
	Total   int
	Success int
	Skipped int
	Failed  int
}

// MigrationOutput is the full migration report.
type MigrationOutput struct {
	Summary MigrationSummary
	Results []*MigrationResult
}

// GalleryUsecase reconciles gallery rows with managed object storage.
type GalleryUsecase interface {
	ListImages(ctx context.Context) (*GalleryListOutput, error)
	CreateImage(ctx context.Context, input *CreateGalleryImageInput) (*entity.GalleryImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, input *UploadGalleryImageInput) (*UploadGalleryImageOutput, error)
	Import(ctx context.Context, items []*ImportItem) (*ImportOutput, error)
	Cleanup(ctx context.Context, input *CleanupInput) (*CleanupOutput, error)
	Migrate(ctx context.Context) (*MigrationOutput, error)
}
