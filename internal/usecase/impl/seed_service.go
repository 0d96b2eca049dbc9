package impl

import (
	"context"
	"log/slog"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		logger:    logger,
	}
}

// Seed upserts the profile, replaces every social link and inserts experiences only into an empty timeline,
// all in one transaction.
func (srv *seedService) Seed(ctx context.Context, input *usecase.SeedInput) (*usecase.SeedOutput, error) {
	profile := profileFromInput(&input.Profile)
	if err := requireFields(
		field{"profile.name", profile.Name},
		field{"profile.title", profile.Title},
		field{"profile.email", profile.Email},
		field{"profile.bio", profile.Bio},
	); err != nil {
		return nil, err
	}

	links := make([]*entity.SocialLink, 0, len(input.SocialLinks))
	for i := range input.SocialLinks {
		link, err := socialLinkFromInput(&input.SocialLinks[i])
		if err != nil {
			return nil, errors.Wrapf(err, "social link %d", i)
		}
		links = append(links, link)
	}

	experiences := make([]*entity.Experience, 0, len(input.Experiences))
	for i := range input.Experiences {
		experience, err := experienceFromInput(&input.Experiences[i])
		if err != nil {
			return nil, errors.Wrapf(err, "experience %d", i)
		}
		experiences = append(experiences, experience)
	}

	output := &usecase.SeedOutput{Profile: profile, SocialLinks: len(links)}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().Save(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		if err := repoFactory.NewSocialLinkRepository().ReplaceAll(ctx, links); err != nil {
			return errors.Wrap(err, "failed to replace social links")
		}

		experienceRepo := repoFactory.NewExperienceRepository()
		count, err := experienceRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count experiences")
		}
		if count > 0 {
			return nil
		}

		for _, experience := range experiences {
			if err := experienceRepo.Create(ctx, experience); err != nil {
				return errors.Wrap(err, "failed to create experience")
			}
		}
		output.ExperiencesInserted = len(experiences)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed content")
	}

	srv.logger.Info("Content seeded",
		slog.Int("socialLinks", output.SocialLinks),
		slog.Int("experiencesInserted", output.ExperiencesInserted),
	)

	return output, nil
}
