package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"folio/config"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type galleryHandlerFixtures struct {
	handler   *GalleryHandler
	galleryUC *mockUsecase.MockGalleryUsecase
	echo      *echo.Echo
}

func createTestGalleryHandler(t *testing.T) *galleryHandlerFixtures {
	galleryUC := mockUsecase.NewMockGalleryUsecase(t)
	cfg := &config.Config{Gallery: &config.GalleryConfig{ListCacheMaxAge: time.Hour}}

	return &galleryHandlerFixtures{
		handler:   NewGalleryHandler(GalleryHandlerParams{GalleryUC: galleryUC, Config: cfg, Logger: newDiscardLogger()}),
		galleryUC: galleryUC,
		echo:      newTestEcho(),
	}
}

func TestGalleryHandler_ListImages(t *testing.T) {
	t.Run("reports hidden transient rows", func(t *testing.T) {
		fx := createTestGalleryHandler(t)
		fx.galleryUC.EXPECT().ListImages(mock.Anything).Return(&usecase.GalleryListOutput{
			Images:           []*entity.GalleryImage{{ID: uuid.New(), ImageURL: "https://cdn.test/a.png"}},
			RemovedTransient: 2,
		}, nil)

		rec := serve(fx.echo, fx.handler.ListImages, jsonRequest(http.MethodGet, "/api/gallery", ""), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(HeaderRemovedBlobCount))
		assert.Equal(t, "public, max-age=3600, stale-while-revalidate=86400", rec.Header().Get(echo.HeaderCacheControl))
		var out []entity.GalleryImage
		decodeData(t, rec, &out)
		assert.Len(t, out, 1)
	})

	t.Run("empty gallery is an empty array", func(t *testing.T) {
		fx := createTestGalleryHandler(t)
		fx.galleryUC.EXPECT().ListImages(mock.Anything).Return(&usecase.GalleryListOutput{}, nil)

		rec := serve(fx.echo, fx.handler.ListImages, jsonRequest(http.MethodGet, "/api/gallery", ""), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(HeaderRemovedBlobCount))
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})
}

func TestGalleryHandler_CreateImage(t *testing.T) {
	t.Run("blob url is rejected by the usecase", func(t *testing.T) {
		fx := createTestGalleryHandler(t)
		fx.galleryUC.EXPECT().
			CreateImage(mock.Anything, &usecase.CreateGalleryImageInput{RowNumber: 1, ImageURL: "blob:https://x/1"}).
			Return(nil, domainerrors.ErrDisallowedURLScheme)

		rec := serve(fx.echo, fx.handler.CreateImage,
			jsonRequest(http.MethodPost, "/api/gallery", `{"row_number":1,"position":0,"image_url":"blob:https://x/1"}`), newTestSession())

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DISALLOWED_URL_SCHEME", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("negative position fails validation", func(t *testing.T) {
		fx := createTestGalleryHandler(t)

		rec := serve(fx.echo, fx.handler.CreateImage,
			jsonRequest(http.MethodPost, "/api/gallery", `{"row_number":1,"position":-1,"image_url":"https://x/1.png"}`), newTestSession())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGalleryHandler_UploadImage(t *testing.T) {
	t.Run("inserts a row when row_number is given", func(t *testing.T) {
		fx := createTestGalleryHandler(t)
		image := &entity.GalleryImage{ID: uuid.New(), RowNumber: 2, Position: 3, ImageURL: "https://cdn.test/g.png"}
		fx.galleryUC.EXPECT().
			UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadGalleryImageInput) bool {
				return in.RowNumber != nil && *in.RowNumber == 2 && in.Position == 3 &&
					in.File.Filename == "g.png" && string(in.File.Data) == "png-bytes"
			})).
			Return(&usecase.UploadGalleryImageOutput{Name: "g.png", URL: image.ImageURL, Image: image}, nil)

		req := multipartRequest(t, "/api/uploads/gallery", map[string]string{"row_number": "2", "position": "3"}, "g.png", []byte("png-bytes"))
		rec := serve(fx.echo, fx.handler.UploadImage, req, newTestSession())

		require.Equal(t, http.StatusCreated, rec.Code)
		var out UploadGalleryImageResponse
		decodeData(t, rec, &out)
		assert.Equal(t, image.ID, out.Image.ID)
	})

	t.Run("missing file", func(t *testing.T) {
		fx := createTestGalleryHandler(t)

		req := multipartRequest(t, "/api/uploads/gallery", map[string]string{"row_number": "2"}, "", nil)
		rec := serve(fx.echo, fx.handler.UploadImage, req, newTestSession())

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "file is required", decodeEnvelope(t, rec).Error.Details)
	})

	t.Run("non-numeric row", func(t *testing.T) {
		fx := createTestGalleryHandler(t)

		req := multipartRequest(t, "/api/uploads/gallery", map[string]string{"row_number": "two"}, "g.png", []byte("x"))
		rec := serve(fx.echo, fx.handler.UploadImage, req, newTestSession())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGalleryHandler_Import(t *testing.T) {
	fx := createTestGalleryHandler(t)
	id := uuid.New()
	row := 1
	fx.galleryUC.EXPECT().
		Import(mock.Anything, mock.MatchedBy(func(items []*usecase.ImportItem) bool {
			return len(items) == 2 &&
				items[0].Action == "" && items[0].URL == "https://x/a.png" &&
				items[1].Action == usecase.ImportActionDelete && items[1].ID != nil && *items[1].ID == id
		})).
		Return(&usecase.ImportOutput{
			Results: []*usecase.ImportItemResult{
				{Index: 0, Action: usecase.ImportActionCreate, OK: true, RowNumber: &row, PublicURL: "https://cdn.test/a.png"},
				{Index: 1, Action: usecase.ImportActionDelete, OK: false, ID: &id, Reason: "target not found"},
			},
			Succeeded: 1,
			Failed:    1,
		}, nil)

	body := `{"items":[{"url":"https://x/a.png","row_number":1},{"action":"delete","id":"` + id.String() + `"}]}`
	rec := serve(fx.echo, fx.handler.Import, jsonRequest(http.MethodPost, "/api/uploads/gallery/import", body), newTestSession())

	require.Equal(t, http.StatusOK, rec.Code)
	var out ImportResponse
	decodeData(t, rec, &out)
	require.Len(t, out.Results, 2)
	assert.True(t, out.Results[0].OK)
	assert.Equal(t, "target not found", out.Results[1].Reason)
	assert.Equal(t, 1, out.Failed)
}

func TestGalleryHandler_ImportRejectsEmptyBatch(t *testing.T) {
	fx := createTestGalleryHandler(t)

	rec := serve(fx.echo, fx.handler.Import, jsonRequest(http.MethodPost, "/api/uploads/gallery/import", `{"items":[]}`), newTestSession())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleryHandler_Cleanup(t *testing.T) {
	fx := createTestGalleryHandler(t)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	fx.galleryUC.EXPECT().
		Cleanup(mock.Anything, &usecase.CleanupInput{PurgeOrphans: true}).
		Return(&usecase.CleanupOutput{DeletedIDs: ids, RemovedTransient: 1, RemovedDuplicates: 1, PurgedObjects: 4}, nil)

	rec := serve(fx.echo, fx.handler.Cleanup,
		jsonRequest(http.MethodPost, "/api/admin/gallery/cleanup", `{"purge_orphans":true}`), newTestSession())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderRemovedBlobCount))
	var out CleanupResponse
	decodeData(t, rec, &out)
	assert.Equal(t, 2, out.DeletedCount)
	assert.Equal(t, ids, out.DeletedIDs)
	assert.Equal(t, 4, out.PurgedObjects)
}

func TestGalleryHandler_Migrate(t *testing.T) {
	fx := createTestGalleryHandler(t)
	fx.galleryUC.EXPECT().Migrate(mock.Anything).Return(&usecase.MigrationOutput{
		Summary: usecase.MigrationSummary{Total: 1, Skipped: 1},
		Results: []*usecase.MigrationResult{
			{ID: uuid.New(), OriginalURL: "blob:x", Status: usecase.MigrationSkipped, Reason: "blob/data url not supported"},
		},
	}, nil)

	rec := serve(fx.echo, fx.handler.Migrate, jsonRequest(http.MethodPost, "/api/admin/gallery/migrate", ""), newTestSession())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `"status":"skipped"`), body)
	assert.True(t, strings.Contains(body, `"summary":{"total":1,"success":0,"skipped":1,"failed":0}`), body)
}
