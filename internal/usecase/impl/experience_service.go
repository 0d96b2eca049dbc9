package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// experienceService implements the ExperienceUsecase interface.
type experienceService struct {
	experienceRepo repository.ExperienceRepository
	logger         *slog.Logger
}

// NewExperienceService is the constructor for experienceService.
func NewExperienceService(
	experienceRepo repository.ExperienceRepository,
	logger *slog.Logger,
) usecase.ExperienceUsecase {
	return &experienceService{
		experienceRepo: experienceRepo,
		logger:         logger,
	}
}

func (srv *experienceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *experienceService) ListExperiences(ctx context.Context) ([]*entity.Experience, error) {
	experiences, err := srv.experienceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	return experiences, nil
}

func (srv *experienceService) GetExperience(ctx context.Context, id uuid.UUID) (*entity.Experience, error) {
	experience, err := srv.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapExperienceError(err, "failed to get experience")
	}

	return experience, nil
}

func (srv *experienceService) CreateExperience(ctx context.Context, input *usecase.ExperienceInput) (*entity.Experience, error) {
	experience, err := experienceFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.experienceRepo.Create(ctx, experience); err != nil {
		return nil, errors.Wrap(err, "failed to create experience")
	}

	srv.log(ctx).Info("Experience created", slog.Any("experienceID", experience.ID))

	return experience, nil
}

func (srv *experienceService) UpdateExperience(ctx context.Context, id uuid.UUID, input *usecase.ExperienceInput) (*entity.Experience, error) {
	experience, err := experienceFromInput(input)
	if err != nil {
		return nil, err
	}
	experience.ID = id

	if err := srv.experienceRepo.Update(ctx, experience); err != nil {
		return nil, mapExperienceError(err, "failed to update experience")
	}

	updated, err := srv.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapExperienceError(err, "failed to reload experience")
	}

	return updated, nil
}

func (srv *experienceService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if err := srv.experienceRepo.Delete(ctx, id); err != nil {
		return mapExperienceError(err, "failed to delete experience")
	}

	srv.log(ctx).Info("Experience deleted", slog.Any("experienceID", id))

	return nil
}

func experienceFromInput(input *usecase.ExperienceInput) (*entity.Experience, error) {
	experience := &entity.Experience{
		Company:     strings.TrimSpace(input.Company),
		Period:      strings.TrimSpace(input.Period),
		Description: strings.TrimSpace(input.Description),
	}

	if err := requireFields(
		field{"company", experience.Company},
		field{"period", experience.Period},
		field{"description", experience.Description},
	); err != nil {
		return nil, err
	}

	return experience, nil
}

func mapExperienceError(err error, message string) error {
	if errors.Is(err, repository.ErrExperienceNotFound) {
		return domainerrors.ErrExperienceNotFound
	}

	return errors.Wrap(err, message)
}
