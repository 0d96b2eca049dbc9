package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"folio/config"
	"folio/internal/delivery/api/response"
	"folio/internal/domain/entity"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderRemovedBlobCount reports how many transient rows a list hid or a cleanup deleted.
const HeaderRemovedBlobCount = "X-Removed-Blob-Count"

const galleryStaleWhileRevalidate = 86400

// GalleryHandlerParams holds dependencies for GalleryHandler, injected by Fx.
type GalleryHandlerParams struct {
	fx.In

	GalleryUC usecase.GalleryUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// GalleryHandler serves the gallery rows and their storage maintenance.
type GalleryHandler struct {
	galleryUC    usecase.GalleryUsecase
	cacheControl string
	logger       *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler
func NewGalleryHandler(params GalleryHandlerParams) *GalleryHandler {
	maxAge := int(params.Config.Gallery.ListCacheMaxAge.Seconds())

	return &GalleryHandler{
		galleryUC:    params.GalleryUC,
		cacheControl: fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, galleryStaleWhileRevalidate),
		logger:       params.Logger,
	}
}

// CreateGalleryImageRequest inserts a row for an already hosted image.
type CreateGalleryImageRequest struct {
	RowNumber int    `json:"row_number" validate:"gte=0"`
	Position  int    `json:"position" validate:"gte=0"`
	ImageURL  string `json:"image_url" validate:"required"`
}

// ImportRequest is a batch of gallery changes.
type ImportRequest struct {
	Items []ImportItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// ImportItemRequest is one batch entry. Action defaults to create.
type ImportItemRequest struct {
	Action    string     `json:"action"`
	ID        *uuid.UUID `json:"id"`
	RowNumber *int       `json:"row_number"`
	Position  *int       `json:"position"`
	URL       string     `json:"url"`
}

// CleanupRequest optionally extends cleanup to unreferenced storage objects.
type CleanupRequest struct {
	PurgeOrphans bool `json:"purge_orphans"`
}

// UploadGalleryImageResponse describes a stored file and the row inserted for it.
type UploadGalleryImageResponse struct {
	Name  string               `json:"name"`
	URL   string               `json:"url"`
	Image *entity.GalleryImage `json:"image,omitempty"`
}

// ImportItemResponse is the outcome of one batch entry.
type ImportItemResponse struct {
	Index     int                  `json:"index"`
	Action    string               `json:"action"`
	OK        bool                 `json:"ok"`
	ID        *uuid.UUID           `json:"id,omitempty"`
	RowNumber *int                 `json:"row_number,omitempty"`
	URL       string               `json:"url,omitempty"`
	PublicURL string               `json:"public_url,omitempty"`
	Reason    string               `json:"reason,omitempty"`
	Detail    string               `json:"detail,omitempty"`
	Record    *entity.GalleryImage `json:"record,omitempty"`
}

// ImportResponse lists per-item outcomes in request order.
type ImportResponse struct {
	Results   []*ImportItemResponse `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// CleanupResponse summarises a cleanup sweep.
type CleanupResponse struct {
	DeletedCount      int         `json:"deleted_count"`
	DeletedIDs        []uuid.UUID `json:"deleted_ids"`
	RemovedTransient  int         `json:"removed_transient"`
	RemovedDuplicates int         `json:"removed_duplicates"`
	PurgedObjects     int         `json:"purged_objects"`
}

// MigrationResultResponse is the migration outcome of one row.
type MigrationResultResponse struct {
	ID          uuid.UUID `json:"id"`
	RowNumber   int       `json:"row_number"`
	Position    int       `json:"position"`
	OriginalURL string    `json:"original_url"`
	NewURL      string    `json:"new_url,omitempty"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
}

// MigrationSummaryResponse counts migration outcomes.
type MigrationSummaryResponse struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// MigrationResponse is the full migration report.
type MigrationResponse struct {
	Summary MigrationSummaryResponse   `json:"summary"`
	Results []*MigrationResultResponse `json:"results"`
}

// ListImages returns the sanitized gallery ordered by row and position.
func (h *GalleryHandler) ListImages(c echo.Context) error {
	out, err := h.galleryUC.ListImages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	if out.RemovedTransient > 0 {
		header.Set(HeaderRemovedBlobCount, strconv.Itoa(out.RemovedTransient))
	}
	header.Set(echo.HeaderCacheControl, h.cacheControl)

	images := out.Images
	if images == nil {
		images = []*entity.GalleryImage{}
	}

	return response.Success(c, http.StatusOK, images)
}

func (h *GalleryHandler) CreateImage(c echo.Context) error {
	var req CreateGalleryImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid gallery image input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := h.galleryUC.CreateImage(c.Request().Context(), &usecase.CreateGalleryImageInput{
		RowNumber: req.RowNumber,
		Position:  req.Position,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, image)
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.galleryUC.DeleteImage(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UploadImage stores a multipart image and, when row_number is given, inserts a row for it.
func (h *GalleryHandler) UploadImage(c echo.Context) error {
	file, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rowNumber, err := optionalFormInt(c, "row_number")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	position, err := optionalFormInt(c, "position")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UploadGalleryImageInput{File: file, RowNumber: rowNumber}
	if position != nil {
		input.Position = *position
	}

	out, err := h.galleryUC.UploadImage(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &UploadGalleryImageResponse{
		Name:  out.Name,
		URL:   out.URL,
		Image: out.Image,
	})
}

// Import applies a batch. Item failures are reported per item, so the batch itself answers 200.
func (h *GalleryHandler) Import(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid import batch")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*usecase.ImportItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = &usecase.ImportItem{
			Action:    item.Action,
			ID:        item.ID,
			RowNumber: item.RowNumber,
			Position:  item.Position,
			URL:       item.URL,
		}
	}

	out, err := h.galleryUC.Import(c.Request().Context(), items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*ImportItemResponse, len(out.Results))
	for i, r := range out.Results {
		results[i] = &ImportItemResponse{
			Index:     r.Index,
			Action:    r.Action,
			OK:        r.OK,
			ID:        r.ID,
			RowNumber: r.RowNumber,
			URL:       r.URL,
			PublicURL: r.PublicURL,
			Reason:    r.Reason,
			Detail:    r.Detail,
			Record:    r.Record,
		}
	}

	return response.Success(c, http.StatusOK, &ImportResponse{
		Results:   results,
		Succeeded: out.Succeeded,
		Failed:    out.Failed,
	})
}

func (h *GalleryHandler) Cleanup(c echo.Context) error {
	var req CleanupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cleanup input")
	}

	out, err := h.galleryUC.Cleanup(c.Request().Context(), &usecase.CleanupInput{PurgeOrphans: req.PurgeOrphans})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(HeaderRemovedBlobCount, strconv.Itoa(out.RemovedTransient))

	deleted := out.DeletedIDs
	if deleted == nil {
		deleted = []uuid.UUID{}
	}

	return response.Success(c, http.StatusOK, &CleanupResponse{
		DeletedCount:      out.DeletedCount(),
		DeletedIDs:        deleted,
		RemovedTransient:  out.RemovedTransient,
		RemovedDuplicates: out.RemovedDuplicates,
		PurgedObjects:     out.PurgedObjects,
	})
}

// Migrate copies externally hosted images into the gallery bucket.
func (h *GalleryHandler) Migrate(c echo.Context) error {
	out, err := h.galleryUC.Migrate(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]*MigrationResultResponse, len(out.Results))
	for i, r := range out.Results {
		results[i] = &MigrationResultResponse{
			ID:          r.ID,
			RowNumber:   r.RowNumber,
			Position:    r.Position,
			OriginalURL: r.OriginalURL,
			NewURL:      r.NewURL,
			Status:      string(r.Status),
			Reason:      r.Reason,
		}
	}

	return response.Success(c, http.StatusOK, &MigrationResponse{
		Summary: MigrationSummaryResponse{
			Total:   out.Summary.Total,
			Success: out.Summary.Success,
			Skipped: out.Summary.Skipped,
			Failed:  out.Summary.Failed,
		},
		Results: results,
	})
}
