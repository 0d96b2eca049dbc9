package handler

import (
	"net/http"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssetHandler(t *testing.T) {
	newHandler := func(t *testing.T) (*AssetHandler, *mockUsecase.MockAssetUsecase) {
		uc := mockUsecase.NewMockAssetUsecase(t)

		return NewAssetHandler(AssetHandlerParams{AssetUC: uc, Logger: newDiscardLogger()}), uc
	}

	t.Run("favicon returns filename and url", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().
			UploadFavicon(mock.Anything, mock.MatchedBy(func(f *usecase.FileInput) bool { return f.Filename == "icon.ico" })).
			Return(&usecase.UploadedAsset{Name: "favicon.ico", URL: "https://cdn.test/site/favicon.ico"}, nil)

		rec := serve(newTestEcho(), h.UploadFavicon,
			multipartRequest(t, "/api/uploads/favicon", nil, "icon.ico", []byte{0, 0, 1, 0}), newTestSession())

		require.Equal(t, http.StatusOK, rec.Code)
		var out FaviconResponse
		decodeData(t, rec, &out)
		assert.Equal(t, FaviconResponse{Filename: "favicon.ico", URL: "https://cdn.test/site/favicon.ico"}, out)
	})

	t.Run("oversized favicon", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().UploadFavicon(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPayloadTooLarge)

		rec := serve(newTestEcho(), h.UploadFavicon,
			multipartRequest(t, "/api/uploads/favicon", nil, "icon.png", make([]byte, 128)), newTestSession())

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("list og images", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().ListOGImages(mock.Anything).Return([]*entity.StoredObject{
			{Name: "og-2.png", URL: "https://cdn.test/og/og-2.png", Size: 10, UpdatedAt: time.Unix(2, 0).UTC()},
		}, nil)

		rec := serve(newTestEcho(), h.ListOGImages, jsonRequest(http.MethodGet, "/api/uploads/og-image", ""), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out []entity.StoredObject
		decodeData(t, rec, &out)
		require.Len(t, out, 1)
		assert.Equal(t, "og-2.png", out[0].Name)
	})

	t.Run("delete missing og image", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().DeleteOGImage(mock.Anything, "og-1.png").Return(domainerrors.ErrObjectNotFound)

		rec := serve(newTestEcho(), h.DeleteOGImage, jsonRequest(http.MethodDelete, "/api/uploads/og-image/og-1.png", ""),
			newTestSession(), "name", "og-1.png")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMetadataHandler(t *testing.T) {
	t.Run("not yet published", func(t *testing.T) {
		uc := mockUsecase.NewMockMetadataUsecase(t)
		h := NewMetadataHandler(MetadataHandlerParams{MetadataUC: uc, Logger: newDiscardLogger()})
		uc.EXPECT().GetPublished(mock.Anything).Return(nil, domainerrors.ErrMetadataNotPublished)

		rec := serve(newTestEcho(), h.GetPublished, jsonRequest(http.MethodGet, "/api/metadata", ""), nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "METADATA_NOT_PUBLISHED", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("publish", func(t *testing.T) {
		uc := mockUsecase.NewMockMetadataUsecase(t)
		h := NewMetadataHandler(MetadataHandlerParams{MetadataUC: uc, Logger: newDiscardLogger()})
		uc.EXPECT().Publish(mock.Anything).Return(&entity.MetadataSnapshot{Name: "Ada", PublishedAt: testNow}, nil)

		rec := serve(newTestEcho(), h.Publish, jsonRequest(http.MethodPost, "/api/admin/metadata/publish", ""), newTestSession())

		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.MetadataSnapshot
		decodeData(t, rec, &out)
		assert.Equal(t, "Ada", out.Name)
	})
}
