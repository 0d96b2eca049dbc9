package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"folio/config"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	"folio/internal/media"
	"folio/internal/usecase"
	"folio/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	faviconICOName      = "favicon.ico"
	faviconPNGName      = "apple-touch-icon.png"
	faviconCacheControl = "public, max-age=3600"
	ogImagePrefix       = "og-"
	ogCacheControl      = "public, max-age=31536000, immutable"
)

var faviconTypes = map[string]string{
	"image/x-icon": faviconICOName,
	"image/png":    faviconPNGName,
}

// assetService implements the AssetUsecase interface.
type assetService struct {
	storage         service.ObjectStorage
	faviconMaxBytes int64
	ogImageMaxBytes int64
	logger          *slog.Logger
	now             func() time.Time
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		storage:         params.Storage,
		faviconMaxBytes: params.Config.Assets.FaviconMaxBytes,
		ogImageMaxBytes: params.Config.Assets.OGImageMaxBytes,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadFavicon replaces the site favicon. ICO files become favicon.ico and PNG files apple-touch-icon.png.
func (srv *assetService) UploadFavicon(ctx context.Context, file *usecase.FileInput) (*usecase.UploadedAsset, error) {
	if err := checkFile(file, srv.faviconMaxBytes); err != nil {
		return nil, err
	}

	contentType := media.DetectContentType(file.Data)
	name, ok := faviconTypes[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails("favicon must be .ico or .png, got " + contentType)
	}

	publicURL, err := srv.storage.Upload(ctx, service.BucketSite, name, file.Data, service.UploadOptions{
		ContentType:  contentType,
		CacheControl: faviconCacheControl,
		Overwrite:    true,
	})
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Favicon uploaded", slog.String("object", name), slog.Int("bytes", len(file.Data)))

	return &usecase.UploadedAsset{Name: name, URL: publicURL}, nil
}

func (srv *assetService) UploadOGImage(ctx context.Context, file *usecase.FileInput) (*usecase.UploadedAsset, error) {
	if err := checkFile(file, srv.ogImageMaxBytes); err != nil {
		return nil, err
	}

	contentType := media.DetectContentType(file.Data)
	if !media.IsImage(contentType) {
		return nil, domainerrors.ErrUnsupportedMediaType.WithDetails(contentType)
	}

	name := media.TimestampedName("og", srv.now(), media.ExtensionFor(contentType))
	publicURL, err := srv.storage.Upload(ctx, service.BucketOG, name, file.Data, service.UploadOptions{
		ContentType:  contentType,
		CacheControl: ogCacheControl,
	})
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("OG image uploaded", slog.String("object", name))

	return &usecase.UploadedAsset{Name: name, URL: publicURL}, nil
}

func (srv *assetService) ListOGImages(ctx context.Context) ([]*entity.StoredObject, error) {
	objects, err := srv.storage.List(ctx, service.BucketOG, ogImagePrefix)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	sort.SliceStable(objects, func(i, j int) bool {
		if !objects[i].UpdatedAt.Equal(objects[j].UpdatedAt) {
			return objects[i].UpdatedAt.After(objects[j].UpdatedAt)
		}

		return objects[i].Name > objects[j].Name
	})

	return objects, nil
}

// DeleteOGImage removes one OG image. Only plain og- object names are accepted.
func (srv *assetService) DeleteOGImage(ctx context.Context, name string) error {
	if !strings.HasPrefix(name, ogImagePrefix) || len(name) == len(ogImagePrefix) ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return domainerrors.ErrValidationFailed.WithDetails("invalid OG image name")
	}

	err := srv.storage.Delete(ctx, service.BucketOG, name)
	if errors.Is(err, service.ErrObjectNotFound) {
		return domainerrors.ErrObjectNotFound
	}
	if err != nil {
		return domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	srv.log(ctx).Info("OG image deleted", slog.String("object", name))

	return nil
}

func checkFile(file *usecase.FileInput, maxBytes int64) error {
	if file == nil || len(file.Data) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	if maxBytes > 0 && int64(len(file.Data)) > maxBytes {
		return domainerrors.ErrPayloadTooLarge.WithDetails("limit is " + util.FormatBytes(maxBytes))
	}

	return nil
}
