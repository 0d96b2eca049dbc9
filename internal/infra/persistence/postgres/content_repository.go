package postgres

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return toProfileDomain(&profileM), nil
}

// Save keeps the table at a single row: the earliest row is overwritten when one exists.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	existing, err := repo.Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return err
	}

	if existing == nil {
		if profile.ID == uuid.Nil {
			profile.ID = uuid.New()
		}
		profileM := fromProfileDomain(profile)
		if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
		}
		profile.CreatedAt = profileM.CreatedAt
		profile.UpdatedAt = profileM.UpdatedAt

		return nil
	}

	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"name":           profile.Name,
			"title":          profile.Title,
			"email":          profile.Email,
			"location":       profile.Location,
			"bio":            profile.Bio,
			"og_title":       profile.OGTitle,
			"og_description": profile.OGDescription,
			"og_image_url":   profile.OGImageURL,
			"updated_at":     now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = now

	return nil
}

// experienceRepository implements the domain.ExperienceRepository interface.
type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository is the constructor for experienceRepository.
func NewExperienceRepository(db *gorm.DB) repository.ExperienceRepository {
	return &experienceRepository{db: db}
}

func (repo *experienceRepository) List(ctx context.Context) ([]*entity.Experience, error) {
	var experienceMs []*model.ExperienceModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Find(&experienceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	experiences := make([]*entity.Experience, 0, len(experienceMs))
	for _, m := range experienceMs {
		experiences = append(experiences, toExperienceDomain(m))
	}

	return experiences, nil
}

func (repo *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	var experienceM model.ExperienceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&experienceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExperienceNotFound
		}

		return nil, errors.Wrap(err, "failed to find experience")
	}

	return toExperienceDomain(&experienceM), nil
}

func (repo *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	if experience.ID == uuid.Nil {
		experience.ID = uuid.New()
	}
	experienceM := fromExperienceDomain(experience)

	if err := repo.db.WithContext(ctx).Create(experienceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create experience")
	}

	experience.CreatedAt = experienceM.CreatedAt
	experience.UpdatedAt = experienceM.UpdatedAt

	return nil
}

func (repo *experienceRepository) Update(ctx context.Context, experience *entity.Experience) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ExperienceModel{}).
		Where("id = ?", experience.ID).
		Updates(map[string]any{
			"company":     experience.Company,
			"period":      experience.Period,
			"description": experience.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update experience")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExperienceNotFound
	}

	experience.UpdatedAt = now

	return nil
}

func (repo *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExperienceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete experience")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExperienceNotFound
	}

	return nil
}

func (repo *experienceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ExperienceModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count experiences")
	}

	return count, nil
}

// socialLinkRepository implements the domain.SocialLinkRepository interface.
type socialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository is the constructor for socialLinkRepository.
func NewSocialLinkRepository(db *gorm.DB) repository.SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (repo *socialLinkRepository) List(ctx context.Context) ([]*entity.SocialLink, error) {
	var linkMs []*model.SocialLinkModel
	if err := repo.db.WithContext(ctx).
		Order("label ASC").
		Order("id").
		Find(&linkMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list social links")
	}

	links := make([]*entity.SocialLink, 0, len(linkMs))
	for _, m := range linkMs {
		links = append(links, toSocialLinkDomain(m))
	}

	return links, nil
}

func (repo *socialLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	var linkM model.SocialLinkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find social link")
	}

	return toSocialLinkDomain(&linkM), nil
}

func (repo *socialLinkRepository) Create(ctx context.Context, link *entity.SocialLink) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	linkM := fromSocialLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create social link")
	}

	link.CreatedAt = linkM.CreatedAt

	return nil
}

func (repo *socialLinkRepository) Update(ctx context.Context, link *entity.SocialLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SocialLinkModel{}).
		Where("id = ?", link.ID).
		Updates(map[string]any{
			"label": link.Label,
			"href":  link.Href,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update social link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocialLinkNotFound
	}

	return nil
}

func (repo *socialLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SocialLinkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete social link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocialLinkNotFound
	}

	return nil
}

// ReplaceAll is expected to run inside TransactionManager.Execute so readers never observe an empty list.
func (repo *socialLinkRepository) ReplaceAll(ctx context.Context, links []*entity.SocialLink) error {
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.SocialLinkModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear social links")
	}

	if len(links) == 0 {
		return nil
	}

	linkMs := make([]*model.SocialLinkModel, 0, len(links))
	for _, link := range links {
		if link.ID == uuid.Nil {
			link.ID = uuid.New()
		}
		linkMs = append(linkMs, fromSocialLinkDomain(link))
	}

	if err := repo.db.WithContext(ctx).Create(&linkMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert social links")
	}

	for i, m := range linkMs {
		links[i].CreatedAt = m.CreatedAt
	}

	return nil
}
