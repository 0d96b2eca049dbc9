package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	metadataObjectName   = "metadata.json"
	metadataCacheControl = "no-cache"
)

// metadataService implements the MetadataUsecase interface.
type metadataService struct {
	profileRepo repository.ProfileRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
	now         func() time.Time
}

// MetadataServiceParams holds dependencies for MetadataService, injected by Fx.
type MetadataServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewMetadataService is the constructor for metadataService.
func NewMetadataService(params MetadataServiceParams) usecase.MetadataUsecase {
	return &metadataService{
		profileRepo: params.ProfileRepo,
		storage:     params.Storage,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *metadataService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish snapshots the current profile and favicon into metadata.json in the site bucket.
func (srv *metadataService) Publish(ctx context.Context) (*entity.MetadataSnapshot, error) {
	profile, err := srv.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	faviconURL, err := srv.currentFavicon(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &entity.MetadataSnapshot{
		Name:          profile.Name,
		Title:         profile.Title,
		Email:         profile.Email,
		Location:      profile.Location,
		Description:   profile.Bio,
		OGTitle:       firstNonEmpty(profile.OGTitle, profile.Name+" | "+profile.Title),
		OGDescription: firstNonEmpty(profile.OGDescription, profile.Bio),
		OGImageURL:    profile.OGImageURL,
		FaviconURL:    faviconURL,
		PublishedAt:   srv.now().UTC(),
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode metadata")
	}

	if _, err := srv.storage.Upload(ctx, service.BucketSite, metadataObjectName, payload, service.UploadOptions{
		ContentType:  "application/json",
		CacheControl: metadataCacheControl,
		Overwrite:    true,
	}); err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Metadata published", slog.Time("publishedAt", snapshot.PublishedAt))

	return snapshot, nil
}

func (srv *metadataService) GetPublished(ctx context.Context) (*entity.MetadataSnapshot, error) {
	payload, err := srv.storage.Read(ctx, service.BucketSite, metadataObjectName)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrMetadataNotPublished
		}

		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	snapshot := new(entity.MetadataSnapshot)
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode metadata")
	}

	return snapshot, nil
}

// currentFavicon prefers favicon.ico over the PNG touch icon; an empty URL means none was uploaded.
func (srv *metadataService) currentFavicon(ctx context.Context) (string, error) {
	for _, name := range []string{faviconICOName, faviconPNGName} {
		exists, err := srv.storage.Exists(ctx, service.BucketSite, name)
		if err != nil {
			return "", domainerrors.ErrStorageFailed.WithDetails(err.Error())
		}
		if exists {
			return srv.storage.PublicURL(service.BucketSite, name), nil
		}
	}

	return "", nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
