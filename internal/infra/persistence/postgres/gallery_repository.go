package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// galleryRepository implements the domain.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{db: db}
}

func (repo *galleryRepository) List(ctx context.Context) ([]*entity.GalleryImage, error) {
	var imageMs []*model.GalleryImageModel
	if err := repo.db.WithContext(ctx).
		Order("row_number ASC").
		Order("position ASC").
		Order("id").
		Find(&imageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gallery images")
	}

	return toGalleryImagesDomain(imageMs), nil
}

func (repo *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error) {
	var imageM model.GalleryImageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGalleryImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find gallery image")
	}

	return toGalleryImageDomain(&imageM), nil
}

func (repo *galleryRepository) FindByPlacement(ctx context.Context, rowNumber int, position *int) ([]*entity.GalleryImage, error) {
	query := repo.db.WithContext(ctx).Where("row_number = ?", rowNumber)
	if position != nil {
		query = query.Where("position = ?", *position)
	}

	var imageMs []*model.GalleryImageModel
	if err := query.
		Order("position ASC").
		Order("created_at ASC").
		Find(&imageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gallery images by placement")
	}

	return toGalleryImagesDomain(imageMs), nil
}

func (repo *galleryRepository) CountByImageURL(ctx context.Context, imageURL string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.GalleryImageModel{}).
		Where("image_url = ?", imageURL).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count gallery images by url")
	}

	return count, nil
}

func (repo *galleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	imageM := fromGalleryImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("gallery image is missing a required column")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

func (repo *galleryRepository) UpdateURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GalleryImageModel{}).
		Where("id = ?", id).
		Update("image_url", imageURL)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update gallery image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGalleryImageNotFound
	}

	return nil
}

func (repo *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GalleryImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete gallery image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGalleryImageNotFound
	}

	return nil
}

func (repo *galleryRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.GalleryImageModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete gallery images")
	}

	return result.RowsAffected, nil
}

func toGalleryImagesDomain(imageMs []*model.GalleryImageModel) []*entity.GalleryImage {
	images := make([]*entity.GalleryImage, 0, len(imageMs))
	for _, m := range imageMs {
		images = append(images, toGalleryImageDomain(m))
	}

	return images
}
