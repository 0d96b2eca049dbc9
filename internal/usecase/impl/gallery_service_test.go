package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const galleryBase = "https://cdn.test/gallery/"

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

// galleryServiceFixtures holds all test dependencies for gallery service tests.
type galleryServiceFixtures struct {
	service     *galleryService
	txManager   *mockRepo.MockTransactionManager
	galleryRepo *mockRepo.MockGalleryRepository
	storage     *mockSvc.MockObjectStorage
	fetcher     *mockSvc.MockImageFetcher
}

func createTestGalleryService(t *testing.T) galleryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	galleryRepo := mockRepo.NewMockGalleryRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	fetcher := mockSvc.NewMockImageFetcher(t)

	srv := NewGalleryService(GalleryServiceParams{
		TxManager:   txManager,
		GalleryRepo: galleryRepo,
		Storage:     storage,
		Fetcher:     fetcher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*galleryService)
	srv.now = fixedClock

	storage.EXPECT().
		ObjectName(service.BucketGallery, mock.Anything).
		RunAndReturn(func(_ service.Bucket, publicURL string) (string, bool) {
			name, ok := strings.CutPrefix(publicURL, galleryBase)

			return name, ok && name != ""
		}).
		Maybe()

	return galleryServiceFixtures{
		service:     srv,
		txManager:   txManager,
		galleryRepo: galleryRepo,
		storage:     storage,
		fetcher:     fetcher,
	}
}

// expectUploads makes every gallery upload succeed and echo the name under the public base.
func (fx galleryServiceFixtures) expectUploads() {
	fx.storage.EXPECT().
		Upload(mock.Anything, service.BucketGallery, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ service.Bucket, name string, _ []byte, opts service.UploadOptions) (string, error) {
			if opts.Overwrite || opts.CacheControl != galleryCacheControl {
				return "", errors.New("unexpected upload options")
			}

			return galleryBase + name, nil
		}).
		Maybe()
}

func namePrefixed(prefix string) any {
	return mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, prefix) })
}

func TestGalleryService_ListImages_HidesTransientRows(t *testing.T) {
	fx := createTestGalleryService(t)
	ctx := context.Background()

	images := []*entity.GalleryImage{
		{ID: uuid.New(), ImageURL: "https://example.com/a.jpg"},
		{ID: uuid.New(), ImageURL: "blob:https://admin.test/1234"},
		{ID: uuid.New(), ImageURL: "BLOB:https://admin.test/5678"},
		{ID: uuid.New(), ImageURL: galleryBase + "b.png"},
	}
	fx.galleryRepo.EXPECT().List(ctx).Return(images, nil)

	output, err := fx.service.ListImages(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, output.RemovedTransient)
	require.Len(t, output.Images, 2)
	assert.Equal(t, images[0].ID, output.Images[0].ID)
	assert.Equal(t, images[3].ID, output.Images[1].ID)
}

func TestGalleryService_CreateImage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.CreateGalleryImageInput
		wantErr error
	}{
		{name: "external https", input: &usecase.CreateGalleryImageInput{RowNumber: 1, ImageURL: "https://example.com/a.jpg"}},
		{name: "managed object", input: &usecase.CreateGalleryImageInput{RowNumber: 2, Position: 3, ImageURL: galleryBase + "x.png"}},
		{name: "blob url", input: &usecase.CreateGalleryImageInput{ImageURL: "blob:https://admin.test/1"}, wantErr: domainerrors.ErrDisallowedURLScheme},
		{name: "data url", input: &usecase.CreateGalleryImageInput{ImageURL: "data:image/png;base64,AAAA"}, wantErr: domainerrors.ErrDisallowedURLScheme},
		{name: "ftp url", input: &usecase.CreateGalleryImageInput{ImageURL: "ftp://example.com/a.jpg"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "negative row", input: &usecase.CreateGalleryImageInput{RowNumber: -1, ImageURL: "https://example.com/a.jpg"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing url", input: &usecase.CreateGalleryImageInput{}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGalleryService(t)
			if tt.wantErr == nil {
				fx.galleryRepo.EXPECT().
					Create(ctx, mock.MatchedBy(func(img *entity.GalleryImage) bool { return img.ImageURL == tt.input.ImageURL })).
					Return(nil)
			}

			image, err := fx.service.CreateImage(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.RowNumber, image.RowNumber)
		})
	}
}

func TestGalleryService_DeleteImage(t *testing.T) {
	ctx := context.Background()

	t.Run("releases an unreferenced managed object", func(t *testing.T) {
		fx := createTestGalleryService(t)
		image := &entity.GalleryImage{ID: uuid.New(), ImageURL: galleryBase + "a.png"}

		fx.galleryRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.galleryRepo.EXPECT().Delete(ctx, image.ID).Return(nil)
		fx.galleryRepo.EXPECT().CountByImageURL(ctx, image.ImageURL).Return(int64(0), nil)
		fx.storage.EXPECT().Delete(ctx, service.BucketGallery, "a.png").Return(nil)

		require.NoError(t, fx.service.DeleteImage(ctx, image.ID))
	})

	t.Run("keeps an object another row still uses", func(t *testing.T) {
		fx := createTestGalleryService(t)
		image := &entity.GalleryImage{ID: uuid.New(), ImageURL: galleryBase + "a.png"}

		fx.galleryRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.galleryRepo.EXPECT().Delete(ctx, image.ID).Return(nil)
		fx.galleryRepo.EXPECT().CountByImageURL(ctx, image.ImageURL).Return(int64(1), nil)

		require.NoError(t, fx.service.DeleteImage(ctx, image.ID))
	})

	t.Run("external url touches no storage", func(t *testing.T) {
		fx := createTestGalleryService(t)
		image := &entity.GalleryImage{ID: uuid.New(), ImageURL: "https://example.com/a.jpg"}

		fx.galleryRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.galleryRepo.EXPECT().Delete(ctx, image.ID).Return(nil)

		require.NoError(t, fx.service.DeleteImage(ctx, image.ID))
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createTestGalleryService(t)
		id := uuid.New()
		fx.galleryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrGalleryImageNotFound)

		assert.ErrorIs(t, fx.service.DeleteImage(ctx, id), domainerrors.ErrGalleryImageNotFound)
	})
}

func TestGalleryService_UploadImage(t *testing.T) {
	ctx := context.Background()
	row := 2

	t.Run("stores the file and inserts a row", func(t *testing.T) {
		fx := createTestGalleryService(t)
		fx.expectUploads()
		fx.galleryRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(img *entity.GalleryImage) bool {
				return img.RowNumber == 2 && img.Position == 1 && strings.HasPrefix(img.ImageURL, galleryBase+"gallery-")
			})).
			Return(nil)

		output, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File:      &usecase.FileInput{Filename: "tile.png", Data: pngBytes},
			RowNumber: &row,
			Position:  1,
		})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(output.Name, ".png"))
		assert.NotNil(t, output.Image)
	})

	t.Run("without a row only stores the file", func(t *testing.T) {
		fx := createTestGalleryService(t)
		fx.expectUploads()

		output, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File: &usecase.FileInput{ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}},
		})

		require.NoError(t, err)
		assert.Nil(t, output.Image)
		assert.True(t, strings.HasSuffix(output.Name, ".jpg"))
	})

	t.Run("database failure removes the upload", func(t *testing.T) {
		fx := createTestGalleryService(t)
		fx.expectUploads()
		fx.galleryRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
		fx.storage.EXPECT().Delete(ctx, service.BucketGallery, namePrefixed("gallery-")).Return(nil)

		_, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File:      &usecase.FileInput{Data: pngBytes},
			RowNumber: &row,
		})

		require.Error(t, err)
	})

	t.Run("not an image", func(t *testing.T) {
		fx := createTestGalleryService(t)

		_, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File: &usecase.FileInput{Data: []byte("just some text")},
		})

		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMediaType)
	})

	t.Run("svg declared as png", func(t *testing.T) {
		fx := createTestGalleryService(t)

		_, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File: &usecase.FileInput{
				ContentType: "image/png",
				Data:        []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`),
			},
		})

		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMediaType)
	})

	t.Run("too large", func(t *testing.T) {
		fx := createTestGalleryService(t)

		_, err := fx.service.UploadImage(ctx, &usecase.UploadGalleryImageInput{
			File: &usecase.FileInput{ContentType: "image/png", Data: make([]byte, 2048)},
		})

		assert.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
	})
}

func TestGalleryService_Import_MixedBatch(t *testing.T) {
	fx := createTestGalleryService(t)
	fx.expectUploads()
	ctx := context.Background()

	row := 1
	rowAmbiguous := 4
	fx.fetcher.EXPECT().
		Fetch(ctx, "https://example.com/ok.png").
		Return(&service.FetchedImage{Data: pngBytes, ContentType: "image/png"}, nil)
	fx.fetcher.EXPECT().
		Fetch(ctx, "https://example.com/missing.png").
		Return(nil, errors.New("fetch failed: 404"))
	fx.fetcher.EXPECT().
		Fetch(ctx, "https://example.com/page.html").
		Return(nil, errors.Wrap(service.ErrNotAnImage, "text/html"))
	fx.fetcher.EXPECT().
		Fetch(ctx, "https://example.com/dbfail.webp").
		Return(&service.FetchedImage{Data: []byte("RIFF"), ContentType: "image/webp"}, nil)

	fx.galleryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(img *entity.GalleryImage) bool { return strings.HasSuffix(img.ImageURL, ".png") })).
		Run(func(_ context.Context, img *entity.GalleryImage) { img.ID = uuid.New() }).
		Return(nil)
	fx.galleryRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(img *entity.GalleryImage) bool { return strings.HasSuffix(img.ImageURL, ".webp") })).
		Return(errors.New("insert failed"))
	fx.storage.EXPECT().
		Delete(ctx, service.BucketGallery, mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "gallery-import-") && strings.HasSuffix(name, ".webp")
		})).
		Return(nil)
	fx.galleryRepo.EXPECT().
		FindByPlacement(ctx, rowAmbiguous, (*int)(nil)).
		Return([]*entity.GalleryImage{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	items := []*usecase.ImportItem{
		{URL: "https://example.com/ok.png", RowNumber: &row},
		{Action: "create", URL: "blob:https://admin.test/1"},
		{Action: "create", URL: "https://example.com/missing.png"},
		{Action: "create", URL: "https://example.com/page.html"},
		{Action: "create", URL: "https://example.com/dbfail.webp"},
		{Action: "update", URL: "https://example.com/new.png", RowNumber: &rowAmbiguous},
		{Action: "update"},
		{Action: "delete"},
		{Action: "rename", URL: "https://example.com/x.png"},
		{Action: "create", URL: "ftp://example.com/x.png"},
		{Action: "create"},
	}

	output, err := fx.service.Import(ctx, items)

	require.NoError(t, err)
	require.Len(t, output.Results, len(items))
	assert.Equal(t, 1, output.Succeeded)
	assert.Equal(t, len(items)-1, output.Failed)

	wantReasons := []string{
		"",
		reasonTransientURL,
		reasonFetchFailed,
		reasonNotAnImage,
		reasonDatabaseFailed,
		reasonAmbiguousTarget,
		reasonMissingURL,
		reasonMissingTarget,
		reasonUnknownAction,
		reasonUnsupportedURL,
		reasonMissingURL,
	}
	for i, result := range output.Results {
		assert.Equal(t, i, result.Index)
		assert.Equal(t, wantReasons[i], result.Reason, "item %d", i)
	}

	first := output.Results[0]
	assert.True(t, first.OK)
	assert.Equal(t, usecase.ImportActionCreate, first.Action)
	assert.True(t, strings.HasPrefix(first.PublicURL, galleryBase+"gallery-import-"))
	require.NotNil(t, first.Record)
	assert.Equal(t, 1, first.Record.RowNumber)
	assert.Equal(t, "fetch failed: 404", output.Results[2].Detail)
}

func TestGalleryService_Import_UpdateReplacesManagedObject(t *testing.T) {
	fx := createTestGalleryService(t)
	fx.expectUploads()
	ctx := context.Background()

	target := &entity.GalleryImage{ID: uuid.New(), RowNumber: 3, ImageURL: galleryBase + "old.jpg"}
	fx.galleryRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.fetcher.EXPECT().
		Fetch(ctx, "https://example.com/new.gif").
		Return(&service.FetchedImage{Data: []byte("GIF89a"), ContentType: "image/gif"}, nil)
	fx.galleryRepo.EXPECT().UpdateURL(ctx, target.ID, mock.AnythingOfType("string")).Return(nil)
	fx.galleryRepo.EXPECT().CountByImageURL(ctx, galleryBase+"old.jpg").Return(int64(0), nil)
	fx.storage.EXPECT().Delete(ctx, service.BucketGallery, "old.jpg").Return(nil)

	output, err := fx.service.Import(ctx, []*usecase.ImportItem{
		{Action: "update", ID: &target.ID, URL: "https://example.com/new.gif"},
	})

	require.NoError(t, err)
	result := output.Results[0]
	require.True(t, result.OK, result.Reason)
	assert.True(t, strings.HasSuffix(result.PublicURL, ".gif"))
	assert.Equal(t, 3, *result.RowNumber)
}

func TestGalleryService_Import_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("by placement", func(t *testing.T) {
		fx := createTestGalleryService(t)
		row, pos := 2, 0
		target := &entity.GalleryImage{ID: uuid.New(), RowNumber: row, Position: pos, ImageURL: galleryBase + "a.png"}

		fx.galleryRepo.EXPECT().FindByPlacement(ctx, row, &pos).Return([]*entity.GalleryImage{target}, nil)
		fx.galleryRepo.EXPECT().Delete(ctx, target.ID).Return(nil)
		fx.galleryRepo.EXPECT().CountByImageURL(ctx, target.ImageURL).Return(int64(0), nil)
		fx.storage.EXPECT().Delete(ctx, service.BucketGallery, "a.png").Return(service.ErrObjectNotFound)

		output, err := fx.service.Import(ctx, []*usecase.ImportItem{
			{Action: "delete", RowNumber: &row, Position: &pos},
		})

		require.NoError(t, err)
		assert.True(t, output.Results[0].OK)
		assert.Empty(t, output.Results[0].PublicURL)
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createTestGalleryService(t)
		id := uuid.New()
		fx.galleryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrGalleryImageNotFound)

		output, err := fx.service.Import(ctx, []*usecase.ImportItem{{Action: "delete", ID: &id}})

		require.NoError(t, err)
		assert.Equal(t, reasonTargetNotFound, output.Results[0].Reason)
	})
}

func TestGalleryService_Import_BatchBounds(t *testing.T) {
	fx := createTestGalleryService(t)
	ctx := context.Background()

	_, err := fx.service.Import(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Import(ctx, make([]*usecase.ImportItem, maxImportItems+1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlanCleanup(t *testing.T) {
	base := testNow.Add(-time.Hour)
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	idC := uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	idD := uuid.MustParse("00000000-0000-0000-0000-00000000000d")
	idE := uuid.MustParse("00000000-0000-0000-0000-00000000000e")

	images := []*entity.GalleryImage{
		{ID: idC, ImageURL: "https://x.test/1.jpg", CreatedAt: base.Add(time.Minute)},
		{ID: idB, ImageURL: "https://x.test/1.jpg", CreatedAt: base},
		{ID: idA, ImageURL: "https://x.test/1.jpg", CreatedAt: base},
		{ID: idD, ImageURL: "blob:https://admin.test/9", CreatedAt: base},
		{ID: idE, ImageURL: "https://x.test/2.jpg", CreatedAt: base},
	}

	transient, duplicates := planCleanup(images)

	assert.Equal(t, []uuid.UUID{idD}, transient)
	assert.ElementsMatch(t, []uuid.UUID{idB, idC}, duplicates)
}

func TestPlanCleanup_SecondPassDeletesNothing(t *testing.T) {
	base := testNow.Add(-time.Hour)
	images := []*entity.GalleryImage{
		{ID: uuid.New(), ImageURL: "https://x.test/1.jpg", CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), ImageURL: " https://x.test/1.jpg ", CreatedAt: base},
		{ID: uuid.New(), ImageURL: "https://x.test/1.jpg", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), ImageURL: "BLOB:https://admin.test/1", CreatedAt: base},
		{ID: uuid.New(), ImageURL: "https://x.test/2.jpg", CreatedAt: base},
		{ID: uuid.New(), ImageURL: "https://x.test/2.jpg", CreatedAt: base},
		{ID: uuid.New(), ImageURL: "https://x.test/3.jpg", CreatedAt: base},
	}

	transient, duplicates := planCleanup(images)
	require.Len(t, transient, 1)
	require.Len(t, duplicates, 3)

	removed := make(map[uuid.UUID]bool)
	for _, id := range append(transient, duplicates...) {
		removed[id] = true
	}
	var survivors []*entity.GalleryImage
	for _, image := range images {
		if !removed[image.ID] {
			survivors = append(survivors, image)
		}
	}
	require.Len(t, survivors, 3)
	assert.Equal(t, images[1].ID, survivors[0].ID, "the oldest row of a group is kept")

	transient, duplicates = planCleanup(survivors)

	assert.Empty(t, transient)
	assert.Empty(t, duplicates)
}

func TestGalleryService_Cleanup(t *testing.T) {
	ctx := context.Background()
	keep := &entity.GalleryImage{ID: uuid.New(), ImageURL: galleryBase + "a.png", CreatedAt: testNow.Add(-2 * time.Hour)}
	dup := &entity.GalleryImage{ID: uuid.New(), ImageURL: galleryBase + "a.png", CreatedAt: testNow.Add(-time.Hour)}
	blob := &entity.GalleryImage{ID: uuid.New(), ImageURL: "blob:https://admin.test/1", CreatedAt: testNow}

	fx := createTestGalleryService(t)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().NewGalleryRepository().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().List(ctx).Return([]*entity.GalleryImage{keep, dup, blob}, nil)
			mockGalleryRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{blob.ID, dup.ID}).Return(int64(2), nil)

			return fn(mockFactory)
		})

	now := testNow
	fx.storage.EXPECT().List(ctx, service.BucketGallery, "").Return([]*entity.StoredObject{
		{Name: "a.png", UpdatedAt: now.Add(-3 * time.Hour)},
		{Name: "orphan-old.png", UpdatedAt: now.Add(-2 * time.Hour)},
		{Name: "orphan-fresh.png", UpdatedAt: now.Add(-time.Minute)},
	}, nil)
	fx.galleryRepo.EXPECT().List(ctx).Return([]*entity.GalleryImage{keep}, nil)
	fx.storage.EXPECT().Delete(ctx, service.BucketGallery, "orphan-old.png").Return(nil)

	output, err := fx.service.Cleanup(ctx, &usecase.CleanupInput{PurgeOrphans: true})

	require.NoError(t, err)
	assert.Equal(t, 2, output.DeletedCount())
	assert.Equal(t, 1, output.RemovedTransient)
	assert.Equal(t, 1, output.RemovedDuplicates)
	assert.Equal(t, 1, output.PurgedObjects)
}

func TestGalleryService_Cleanup_NothingToDo(t *testing.T) {
	ctx := context.Background()
	fx := createTestGalleryService(t)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGalleryRepo := mockRepo.NewMockGalleryRepository(t)

			mockFactory.EXPECT().NewGalleryRepository().Return(mockGalleryRepo)
			mockGalleryRepo.EXPECT().List(ctx).Return([]*entity.GalleryImage{{ID: uuid.New(), ImageURL: "https://x.test/1.jpg"}}, nil)
			mockGalleryRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{}).Return(int64(0), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Cleanup(ctx, &usecase.CleanupInput{})

	require.NoError(t, err)
	assert.Zero(t, output.DeletedCount())
	assert.NotNil(t, output.DeletedIDs)
}

func TestGalleryService_Migrate(t *testing.T) {
	fx := createTestGalleryService(t)
	fx.expectUploads()
	ctx := context.Background()

	managed := &entity.GalleryImage{ID: uuid.New(), RowNumber: 0, Position: 0, ImageURL: galleryBase + "a.png"}
	transient := &entity.GalleryImage{ID: uuid.New(), RowNumber: 0, Position: 1, ImageURL: "data:image/png;base64,AAAA"}
	external := &entity.GalleryImage{ID: uuid.New(), RowNumber: 1, Position: 2, ImageURL: "https://example.com/b.png"}
	broken := &entity.GalleryImage{ID: uuid.New(), RowNumber: 1, Position: 3, ImageURL: "https://example.com/gone.png"}

	fx.galleryRepo.EXPECT().List(ctx).Return([]*entity.GalleryImage{managed, transient, external, broken}, nil)
	fx.fetcher.EXPECT().
		Fetch(ctx, external.ImageURL).
		Return(&service.FetchedImage{Data: pngBytes, ContentType: "image/png"}, nil)
	fx.fetcher.EXPECT().Fetch(ctx, broken.ImageURL).Return(nil, errors.New("fetch failed: 410"))
	wantURL := galleryBase + "gallery-migrate-1-2-" + "1741944413000.png"
	fx.galleryRepo.EXPECT().UpdateURL(ctx, external.ID, wantURL).Return(nil)

	output, err := fx.service.Migrate(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.MigrationSummary{Total: 4, Success: 1, Skipped: 2, Failed: 1}, output.Summary)

	results := output.Results
	assert.Equal(t, usecase.MigrationSkipped, results[0].Status)
	assert.Equal(t, reasonAlreadyManaged, results[0].Reason)
	assert.Equal(t, usecase.MigrationSkipped, results[1].Status)
	assert.Equal(t, reasonTransientURL, results[1].Reason)
	assert.Equal(t, usecase.MigrationSuccess, results[2].Status)
	assert.Equal(t, wantURL, results[2].NewURL)
	assert.Equal(t, usecase.MigrationFailed, results[3].Status)
	assert.Contains(t, results[3].Reason, reasonFetchFailed)
}

func TestGalleryService_Migrate_CompensatesFailedUpdate(t *testing.T) {
	fx := createTestGalleryService(t)
	fx.expectUploads()
	ctx := context.Background()

	external := &entity.GalleryImage{ID: uuid.New(), RowNumber: 0, Position: 0, ImageURL: "https://example.com/b.png"}
	fx.galleryRepo.EXPECT().List(ctx).Return([]*entity.GalleryImage{external}, nil)
	fx.fetcher.EXPECT().
		Fetch(ctx, external.ImageURL).
		Return(&service.FetchedImage{Data: pngBytes, ContentType: "image/png"}, nil)
	fx.galleryRepo.EXPECT().UpdateURL(ctx, external.ID, mock.AnythingOfType("string")).Return(errors.New("deadlock"))
	fx.storage.EXPECT().
		Delete(ctx, service.BucketGallery, namePrefixed("gallery-migrate-0-0-")).
		Return(errors.New("bucket unavailable"))

	output, err := fx.service.Migrate(ctx)

	require.NoError(t, err)
	result := output.Results[0]
	assert.Equal(t, usecase.MigrationFailed, result.Status)
	assert.Contains(t, result.Reason, reasonDatabaseFailed)
	assert.Contains(t, result.Reason, "was left behind")
}
