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

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the portfolio profile.
func (srv *profileService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	profile, err := srv.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// SaveProfile creates or overwrites the profile. Published page metadata is left untouched.
func (srv *profileService) SaveProfile(ctx context.Context, input *usecase.ProfileInput) (*entity.Profile, error) {
	profile := profileFromInput(input)
	if err := requireFields(
		field{"name", profile.Name},
		field{"title", profile.Title},
		field{"email", profile.Email},
		field{"bio", profile.Bio},
	); err != nil {
		return nil, err
	}

	if err := srv.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Info("Profile saved", slog.Any("profileID", profile.ID))

	return profile, nil
}

func profileFromInput(input *usecase.ProfileInput) *entity.Profile {
	return &entity.Profile{
		Name:          strings.TrimSpace(input.Name),
		Title:         strings.TrimSpace(input.Title),
		Email:         strings.TrimSpace(input.Email),
		Location:      strings.TrimSpace(input.Location),
		Bio:           strings.TrimSpace(input.Bio),
		OGTitle:       strings.TrimSpace(input.OGTitle),
		OGDescription: strings.TrimSpace(input.OGDescription),
		OGImageURL:    strings.TrimSpace(input.OGImageURL),
	}
}
