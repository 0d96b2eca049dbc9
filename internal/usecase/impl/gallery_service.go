package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/media"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	galleryCacheControl = "public, max-age=31536000, immutable"
	maxImportItems      = 100
)

// Per-item failure reasons reported by import and migration.
const (
	reasonMissingURL      = "missing url"
	reasonTransientURL    = "blob/data url not supported"
	reasonUnsupportedURL  = "unsupported url scheme"
	reasonFetchFailed     = "fetch failed"
	reasonNotAnImage      = "not an image"
	reasonTooLarge        = "image too large"
	reasonUploadFailed    = "upload failed"
	reasonDatabaseFailed  = "database write failed"
	reasonMissingTarget   = "missing target"
	reasonTargetNotFound  = "target not found"
	reasonAmbiguousTarget = "ambiguous target"
	reasonUnknownAction   = "unknown action"
	reasonAlreadyManaged  = "already in storage"
)

// itemError carries a stable reason next to the underlying cause.
type itemError struct {
	reason string
	err    error
}

func (e *itemError) Error() string {
	if e.err == nil {
		return e.reason
	}
	if msg := e.err.Error(); strings.HasPrefix(msg, e.reason) {
		return msg
	}

	return e.reason + ": " + e.err.Error()
}

func (e *itemError) Unwrap() error {
	return e.err
}

func newItemError(reason string, err error) *itemError {
	return &itemError{reason: reason, err: err}
}

// storedImage is an object uploaded into the gallery bucket.
type storedImage struct {
	name string
	url  string
}

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	txManager      repository.TransactionManager
	galleryRepo    repository.GalleryRepository
	storage        service.ObjectStorage
	fetcher        service.ImageFetcher
	concurrency    int
	orphanGrace    time.Duration
	maxUploadBytes int64
	logger         *slog.Logger
	now            func() time.Time
}

// GalleryServiceParams holds dependencies for GalleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	GalleryRepo repository.GalleryRepository
	Storage     service.ObjectStorage
	Fetcher     service.ImageFetcher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	concurrency := params.Config.Gallery.ImportConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &galleryService{
		txManager:      params.TxManager,
		galleryRepo:    params.GalleryRepo,
		storage:        params.Storage,
		fetcher:        params.Fetcher,
		concurrency:    concurrency,
		orphanGrace:    params.Config.Gallery.OrphanGracePeriod,
		maxUploadBytes: params.Config.Fetch.MaxBytes,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListImages returns the gallery ordered by row and position. Rows holding a browser-local URL are hidden
// from the result but left in place for the cleanup sweep.
func (srv *galleryService) ListImages(ctx context.Context) (*usecase.GalleryListOutput, error) {
	images, err := srv.galleryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery images")
	}

	output := &usecase.GalleryListOutput{Images: make([]*entity.GalleryImage, 0, len(images))}
	for _, image := range images {
		if entity.IsTransientURL(image.ImageURL) {
			output.RemovedTransient++

			continue
		}
		output.Images = append(output.Images, image)
	}

	if output.RemovedTransient > 0 {
		srv.log(ctx).Warn("Hiding gallery rows with transient URLs", slog.Int("count", output.RemovedTransient))
	}

	return output, nil
}

// CreateImage inserts a row for an image that is already hosted somewhere reachable.
func (srv *galleryService) CreateImage(ctx context.Context, input *usecase.CreateGalleryImageInput) (*entity.GalleryImage, error) {
	imageURL := strings.TrimSpace(input.ImageURL)
	if err := requireFields(field{"image_url", imageURL}); err != nil {
		return nil, err
	}
	if input.RowNumber < 0 || input.Position < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("row_number and position must not be negative")
	}
	if entity.IsDisallowedImageURL(imageURL) {
		return nil, domainerrors.ErrDisallowedURLScheme
	}
	if _, managed := srv.storage.ObjectName(service.BucketGallery, imageURL); !managed && !isFetchableURL(imageURL) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image_url must be an absolute http(s) URL")
	}

	image := &entity.GalleryImage{
		RowNumber: input.RowNumber,
		Position:  input.Position,
		ImageURL:  imageURL,
	}
	if err := srv.galleryRepo.Create(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to create gallery image")
	}

	srv.log(ctx).Info("Gallery image created", slog.Any("imageID", image.ID), slog.Int("row", image.RowNumber))

	return image, nil
}

// DeleteImage removes a row and then its managed object, unless another row still points at it.
func (srv *galleryService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	image, err := srv.galleryRepo.FindByID(ctx, id)
	if err != nil {
		return mapGalleryError(err, "failed to find gallery image")
	}

	if err := srv.galleryRepo.Delete(ctx, id); err != nil {
		return mapGalleryError(err, "failed to delete gallery image")
	}

	srv.releaseObject(ctx, image.ImageURL)
	srv.log(ctx).Info("Gallery image deleted", slog.Any("imageID", id))

	return nil
}

// UploadImage stores a posted file in the gallery bucket and, when a row number is given, inserts a row for it.
func (srv *galleryService) UploadImage(ctx context.Context, input *usecase.UploadGalleryImageInput) (*usecase.UploadGalleryImageOutput, error) {
	if err := checkFile(input.File, srv.maxUploadBytes); err != nil {
		return nil, err
	}

	contentType := media.DetectContentType(input.File.Data)
	if !media.IsImage(contentType) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(contentType)
	}

	name := media.TimestampedName("gallery", srv.now(), media.ExtensionFor(contentType))
	publicURL, err := srv.storage.Upload(ctx, service.BucketGallery, name, input.File.Data, service.UploadOptions{
		ContentType:  contentType,
		CacheControl: galleryCacheControl,
	})
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	output := &usecase.UploadGalleryImageOutput{Name: name, URL: publicURL}
	if input.RowNumber == nil {
		return output, nil
	}

	image := &entity.GalleryImage{RowNumber: *input.RowNumber, Position: input.Position, ImageURL: publicURL}
	if err := srv.galleryRepo.Create(ctx, image); err != nil {
		return nil, srv.compensate(ctx, name, errors.Wrap(err, "failed to create gallery image"))
	}
	output.Image = image

	return output, nil
}

// Import processes every item independently. One item failing never aborts the batch, and results keep the
// input order even when items run concurrently.
func (srv *galleryService) Import(ctx context.Context, items []*usecase.ImportItem) (*usecase.ImportOutput, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("items must not be empty")
	}
	if len(items) > maxImportItems {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("at most %d items per batch", maxImportItems))
	}

	results := make([]*usecase.ImportItemResult, len(items))
	var group errgroup.Group
	group.SetLimit(srv.concurrency)
	for i, item := range items {
		group.Go(func() error {
			results[i] = srv.importItem(ctx, i, item)

			return nil
		})
	}
	_ = group.Wait()

	output := &usecase.ImportOutput{Results: results}
	for _, result := range results {
		if result.OK {
			output.Succeeded++
		} else {
			output.Failed++
		}
	}

	srv.log(ctx).Info("Gallery import finished", slog.Int("succeeded", output.Succeeded), slog.Int("failed", output.Failed))

	return output, nil
}

func (srv *galleryService) importItem(ctx context.Context, index int, item *usecase.ImportItem) *usecase.ImportItemResult {
	action := strings.ToLower(strings.TrimSpace(item.Action))
	if action == "" {
		action = usecase.ImportActionCreate
	}

	result := &usecase.ImportItemResult{
		Index:     index,
		Action:    action,
		ID:        item.ID,
		RowNumber: item.RowNumber,
		URL:       strings.TrimSpace(item.URL),
	}

	var (
		record *entity.GalleryImage
		err    error
	)
	switch action {
	case usecase.ImportActionCreate:
		record, err = srv.importCreate(ctx, item)
	case usecase.ImportActionUpdate:
		record, err = srv.importUpdate(ctx, item)
	case usecase.ImportActionDelete:
		record, err = srv.importDelete(ctx, item)
	default:
		err = newItemError(reasonUnknownAction, nil)
	}

	if err != nil {
		var itemErr *itemError
		if errors.As(err, &itemErr) {
			result.Reason = itemErr.reason
			if itemErr.err != nil {
				result.Detail = itemErr.err.Error()
			}
		} else {
			result.Reason = err.Error()
		}
		srv.log(ctx).Warn("Gallery import item failed",
			slog.Int("index", index), slog.String("action", action), slog.String("reason", result.Reason))

		return result
	}

	result.OK = true
	result.Record = record
	if record != nil {
		id := record.ID
		row := record.RowNumber
		result.ID = &id
		result.RowNumber = &row
		if action != usecase.ImportActionDelete {
			result.PublicURL = record.ImageURL
		}
	}

	return result
}

func (srv *galleryService) importCreate(ctx context.Context, item *usecase.ImportItem) (*entity.GalleryImage, error) {
	stored, err := srv.fetchAndStore(ctx, item.URL, func(ext string) string {
		return media.TimestampedName("gallery-import", srv.now(), ext)
	})
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		RowNumber: derefInt(item.RowNumber),
		Position:  derefInt(item.Position),
		ImageURL:  stored.url,
	}
	if err := srv.galleryRepo.Create(ctx, image); err != nil {
		return nil, newItemError(reasonDatabaseFailed, srv.compensate(ctx, stored.name, err))
	}

	return image, nil
}

func (srv *galleryService) importUpdate(ctx context.Context, item *usecase.ImportItem) (*entity.GalleryImage, error) {
	if strings.TrimSpace(item.URL) == "" {
		return nil, newItemError(reasonMissingURL, nil)
	}

	target, err := srv.resolveTarget(ctx, item)
	if err != nil {
		return nil, err
	}

	stored, err := srv.fetchAndStore(ctx, item.URL, func(ext string) string {
		return media.TimestampedName("gallery-import", srv.now(), ext)
	})
	if err != nil {
		return nil, err
	}

	if err := srv.galleryRepo.UpdateURL(ctx, target.ID, stored.url); err != nil {
		return nil, newItemError(reasonDatabaseFailed, srv.compensate(ctx, stored.name, err))
	}

	previousURL := target.ImageURL
	target.ImageURL = stored.url
	if previousName, ok := srv.storage.ObjectName(service.BucketGallery, previousURL); ok && previousName != stored.name {
		srv.releaseObject(ctx, previousURL)
	}

	return target, nil
}

func (srv *galleryService) importDelete(ctx context.Context, item *usecase.ImportItem) (*entity.GalleryImage, error) {
	target, err := srv.resolveTarget(ctx, item)
	if err != nil {
		return nil, err
	}

	if err := srv.galleryRepo.Delete(ctx, target.ID); err != nil {
		if errors.Is(err, repository.ErrGalleryImageNotFound) {
			return nil, newItemError(reasonTargetNotFound, nil)
		}

		return nil, newItemError(reasonDatabaseFailed, err)
	}

	srv.releaseObject(ctx, target.ImageURL)

	return target, nil
}

// resolveTarget finds the row an update or delete refers to: by id, or by row number narrowed by position.
// A row reference must match exactly one row.
func (srv *galleryService) resolveTarget(ctx context.Context, item *usecase.ImportItem) (*entity.GalleryImage, error) {
	if item.ID != nil {
		image, err := srv.galleryRepo.FindByID(ctx, *item.ID)
		if errors.Is(err, repository.ErrGalleryImageNotFound) {
			return nil, newItemError(reasonTargetNotFound, nil)
		}
		if err != nil {
			return nil, newItemError(reasonDatabaseFailed, err)
		}

		return image, nil
	}

	if item.RowNumber == nil {
		return nil, newItemError(reasonMissingTarget, nil)
	}

	images, err := srv.galleryRepo.FindByPlacement(ctx, *item.RowNumber, item.Position)
	if err != nil {
		return nil, newItemError(reasonDatabaseFailed, err)
	}
	switch len(images) {
	case 0:
		return nil, newItemError(reasonTargetNotFound, nil)
	case 1:
		return images[0], nil
	default:
		return nil, newItemError(reasonAmbiguousTarget, errors.Errorf("%d rows match", len(images)))
	}
}

// fetchAndStore downloads rawURL and uploads it into the gallery bucket. Transient, embedded and non-http(s)
// URLs are refused before any request is made.
func (srv *galleryService) fetchAndStore(ctx context.Context, rawURL string, objectName func(ext string) string) (*storedImage, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, newItemError(reasonMissingURL, nil)
	}
	if entity.IsDisallowedImageURL(rawURL) {
		return nil, newItemError(reasonTransientURL, nil)
	}
	if !isFetchableURL(rawURL) {
		return nil, newItemError(reasonUnsupportedURL, nil)
	}

	image, err := srv.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage):
			return nil, newItemError(reasonNotAnImage, err)
		case errors.Is(err, service.ErrContentTooLarge):
			return nil, newItemError(reasonTooLarge, err)
		default:
			return nil, newItemError(reasonFetchFailed, err)
		}
	}

	name := objectName(media.ExtensionFor(image.ContentType))
	publicURL, err := srv.storage.Upload(ctx, service.BucketGallery, name, image.Data, service.UploadOptions{
		ContentType:  image.ContentType,
		CacheControl: galleryCacheControl,
	})
	if err != nil {
		return nil, newItemError(reasonUploadFailed, err)
	}

	return &storedImage{name: name, url: publicURL}, nil
}

// compensate removes an object uploaded just before a failed database write and returns the cause,
// annotated when the object could not be removed.
func (srv *galleryService) compensate(ctx context.Context, name string, cause error) error {
	err := srv.storage.Delete(ctx, service.BucketGallery, name)
	if err == nil || errors.Is(err, service.ErrObjectNotFound) {
		return cause
	}

	srv.log(ctx).Error("Failed to remove uploaded object after database failure",
		slog.String("object", name), slog.Any("error", err))

	return errors.Wrapf(cause, "uploaded object %s was left behind (%v)", name, err)
}

// releaseObject deletes the managed object behind rawURL once no row references it. Failures are logged only;
// orphans are collected later by the cleanup sweep.
func (srv *galleryService) releaseObject(ctx context.Context, rawURL string) {
	name, ok := srv.storage.ObjectName(service.BucketGallery, rawURL)
	if !ok {
		return
	}

	count, err := srv.galleryRepo.CountByImageURL(ctx, rawURL)
	if err != nil {
		srv.log(ctx).Warn("Keeping gallery object, reference count unavailable", slog.String("object", name), slog.Any("error", err))

		return
	}
	if count > 0 {
		return
	}

	if err := srv.storage.Delete(ctx, service.BucketGallery, name); err != nil && !errors.Is(err, service.ErrObjectNotFound) {
		srv.log(ctx).Warn("Failed to delete gallery object", slog.String("object", name), slog.Any("error", err))
	}
}

// Cleanup deletes rows with transient URLs and every duplicate row beyond the earliest per URL, in one
// transaction. Running it again right away deletes nothing.
func (srv *galleryService) Cleanup(ctx context.Context, input *usecase.CleanupInput) (*usecase.CleanupOutput, error) {
	output := &usecase.CleanupOutput{DeletedIDs: []uuid.UUID{}}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		galleryRepo := repoFactory.NewGalleryRepository()

		images, err := galleryRepo.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list gallery images")
		}

		transient, duplicates := planCleanup(images)
		ids := make([]uuid.UUID, 0, len(transient)+len(duplicates))
		ids = append(ids, transient...)
		ids = append(ids, duplicates...)

		if _, err := galleryRepo.DeleteByIDs(ctx, ids); err != nil {
			return errors.Wrap(err, "failed to delete gallery images")
		}

		output.DeletedIDs = ids
		output.RemovedTransient = len(transient)
		output.RemovedDuplicates = len(duplicates)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clean up gallery")
	}

	if input != nil && input.PurgeOrphans {
		purged, err := srv.purgeOrphans(ctx)
		if err != nil {
			return nil, err
		}
		output.PurgedObjects = purged
	}

	srv.log(ctx).Info("Gallery cleanup finished",
		slog.Int("removedTransient", output.RemovedTransient),
		slog.Int("removedDuplicates", output.RemovedDuplicates),
		slog.Int("purgedObjects", output.PurgedObjects),
	)

	return output, nil
}

// planCleanup returns the ids of transient rows and of duplicate rows. Within a group sharing an image URL the
// row with the earliest created_at (ties broken by id) survives.
func planCleanup(images []*entity.GalleryImage) (transient, duplicates []uuid.UUID) {
	groups := make(map[string][]*entity.GalleryImage)
	var order []string
	for _, image := range images {
		if entity.IsTransientURL(image.ImageURL) {
			transient = append(transient, image.ID)

			continue
		}

		key := strings.TrimSpace(image.ImageURL)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], image)
	}

	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}

			return group[i].ID.String() < group[j].ID.String()
		})
		for _, image := range group[1:] {
			duplicates = append(duplicates, image.ID)
		}
	}

	return transient, duplicates
}

// purgeOrphans deletes gallery objects no row references once they are older than the grace period, which
// keeps uploads whose row is still being written.
func (srv *galleryService) purgeOrphans(ctx context.Context) (int, error) {
	objects, err := srv.storage.List(ctx, service.BucketGallery, "")
	if err != nil {
		return 0, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	images, err := srv.galleryRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list gallery images")
	}

	referenced := make(map[string]struct{}, len(images))
	for _, image := range images {
		if name, ok := srv.storage.ObjectName(service.BucketGallery, image.ImageURL); ok {
			referenced[name] = struct{}{}
		}
	}

	cutoff := srv.now().Add(-srv.orphanGrace)
	purged := 0
	for _, object := range objects {
		if _, ok := referenced[object.Name]; ok || object.UpdatedAt.After(cutoff) {
			continue
		}

		if err := srv.storage.Delete(ctx, service.BucketGallery, object.Name); err != nil && !errors.Is(err, service.ErrObjectNotFound) {
			srv.log(ctx).Warn("Failed to purge orphaned gallery object", slog.String("object", object.Name), slog.Any("error", err))

			continue
		}
		purged++
	}

	return purged, nil
}

// Migrate copies every externally hosted gallery image into the gallery bucket and points its row at the copy.
func (srv *galleryService) Migrate(ctx context.Context) (*usecase.MigrationOutput, error) {
	images, err := srv.galleryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery images")
	}

	results := make([]*usecase.MigrationResult, len(images))
	var group errgroup.Group
	group.SetLimit(srv.concurrency)
	for i, image := range images {
		group.Go(func() error {
			results[i] = srv.migrateImage(ctx, image)

			return nil
		})
	}
	_ = group.Wait()

	output := &usecase.MigrationOutput{Results: results}
	output.Summary.Total = len(results)
	for _, result := range results {
		switch result.Status {
		case usecase.MigrationSuccess:
			output.Summary.Success++
		case usecase.MigrationSkipped:
			output.Summary.Skipped++
		case usecase.MigrationFailed:
			output.Summary.Failed++
		}
	}

	srv.log(ctx).Info("Gallery migration finished",
		slog.Int("total", output.Summary.Total),
		slog.Int("success", output.Summary.Success),
		slog.Int("skipped", output.Summary.Skipped),
		slog.Int("failed", output.Summary.Failed),
	)

	return output, nil
}

func (srv *galleryService) migrateImage(ctx context.Context, image *entity.GalleryImage) *usecase.MigrationResult {
	result := &usecase.MigrationResult{
		ID:          image.ID,
		RowNumber:   image.RowNumber,
		Position:    image.Position,
		OriginalURL: image.ImageURL,
	}

	if entity.IsDisallowedImageURL(image.ImageURL) {
		result.Status = usecase.MigrationSkipped
		result.Reason = reasonTransientURL

		return result
	}
	if _, managed := srv.storage.ObjectName(service.BucketGallery, image.ImageURL); managed {
		result.Status = usecase.MigrationSkipped
		result.Reason = reasonAlreadyManaged

		return result
	}

	stored, err := srv.fetchAndStore(ctx, image.ImageURL, func(ext string) string {
		return fmt.Sprintf("gallery-migrate-%d-%d-%d.%s", image.RowNumber, image.Position, srv.now().UnixMilli(), ext)
	})
	if err == nil {
		if updateErr := srv.galleryRepo.UpdateURL(ctx, image.ID, stored.url); updateErr != nil {
			err = newItemError(reasonDatabaseFailed, srv.compensate(ctx, stored.name, updateErr))
		}
	}
	if err != nil {
		result.Status = usecase.MigrationFailed
		result.Reason = err.Error()

		return result
	}

	result.Status = usecase.MigrationSuccess
	result.NewURL = stored.url

	return result
}

func mapGalleryError(err error, message string) error {
	if errors.Is(err, repository.ErrGalleryImageNotFound) {
		return domainerrors.ErrGalleryImageNotFound
	}

	return errors.Wrap(err, message)
}

func isFetchableURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)

	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
