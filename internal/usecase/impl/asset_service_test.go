package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAssetService(t *testing.T) (*assetService, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)

	srv := NewAssetService(AssetServiceParams{
		Storage: storage,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	}).(*assetService)
	srv.now = fixedClock

	return srv, storage
}

func TestAssetService_UploadFavicon(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		file        *usecase.FileInput
		wantName    string
		wantErr     error
		contentType string
	}{
		{
			name:        "ico",
			file:        &usecase.FileInput{ContentType: "image/x-icon", Data: []byte{0, 0, 1, 0}},
			wantName:    "favicon.ico",
			contentType: "image/x-icon",
		},
		{
			name:        "declared type is ignored",
			file:        &usecase.FileInput{ContentType: "image/vnd.microsoft.icon", Data: []byte{0, 0, 1, 0}},
			wantName:    "favicon.ico",
			contentType: "image/x-icon",
		},
		{
			name:        "png becomes the touch icon",
			file:        &usecase.FileInput{Data: pngBytes},
			wantName:    "apple-touch-icon.png",
			contentType: "image/png",
		},
		{
			name:    "jpeg refused",
			file:    &usecase.FileInput{ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}},
			wantErr: domainerrors.ErrUnsupportedMediaType,
		},
		{
			name:    "too large",
			file:    &usecase.FileInput{ContentType: "image/png", Data: make([]byte, 65)},
			wantErr: domainerrors.ErrPayloadTooLarge,
		},
		{
			name:    "empty",
			file:    &usecase.FileInput{},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, storage := createTestAssetService(t)
			if tt.wantErr == nil {
				storage.EXPECT().
					Upload(ctx, service.BucketSite, tt.wantName, tt.file.Data, service.UploadOptions{
						ContentType:  tt.contentType,
						CacheControl: "public, max-age=3600",
						Overwrite:    true,
					}).
					Return("https://cdn.test/site/"+tt.wantName, nil)
			}

			asset, err := srv.UploadFavicon(ctx, tt.file)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, asset.Name)
		})
	}
}

func TestAssetService_UploadOGImage(t *testing.T) {
	ctx := context.Background()
	srv, storage := createTestAssetService(t)

	storage.EXPECT().
		Upload(ctx, service.BucketOG, mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "og-1741944413000-") && strings.HasSuffix(name, ".png")
		}), pngBytes, mock.Anything).
		Return("https://cdn.test/og/og.png", nil)

	asset, err := srv.UploadOGImage(ctx, &usecase.FileInput{Data: pngBytes})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/og/og.png", asset.URL)
}

func TestAssetService_ListOGImages_NewestFirst(t *testing.T) {
	ctx := context.Background()
	srv, storage := createTestAssetService(t)

	storage.EXPECT().List(ctx, service.BucketOG, "og-").Return([]*entity.StoredObject{
		{Name: "og-1.jpg", UpdatedAt: testNow.Add(-2 * time.Hour)},
		{Name: "og-3.jpg", UpdatedAt: testNow},
		{Name: "og-2.jpg", UpdatedAt: testNow.Add(-time.Hour)},
	}, nil)

	objects, err := srv.ListOGImages(ctx)

	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, "og-3.jpg", objects[0].Name)
	assert.Equal(t, "og-1.jpg", objects[2].Name)
}

func TestAssetService_DeleteOGImage(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"favicon.ico", "og-", "og-../favicon.ico", "og-a/b.png"} {
		t.Run("rejects "+name, func(t *testing.T) {
			srv, _ := createTestAssetService(t)

			assert.ErrorIs(t, srv.DeleteOGImage(ctx, name), domainerrors.ErrValidationFailed)
		})
	}

	t.Run("missing object", func(t *testing.T) {
		srv, storage := createTestAssetService(t)
		storage.EXPECT().Delete(ctx, service.BucketOG, "og-1.jpg").Return(service.ErrObjectNotFound)

		assert.ErrorIs(t, srv.DeleteOGImage(ctx, "og-1.jpg"), domainerrors.ErrObjectNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		srv, storage := createTestAssetService(t)
		storage.EXPECT().Delete(ctx, service.BucketOG, "og-1.jpg").Return(errors.New("denied"))

		assert.ErrorIs(t, srv.DeleteOGImage(ctx, "og-1.jpg"), domainerrors.ErrStorageFailed)
	})
}
