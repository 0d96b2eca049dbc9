package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// socialLinkService implements the SocialLinkUsecase interface.
type socialLinkService struct {
	socialLinkRepo repository.SocialLinkRepository
	logger         *slog.Logger
}

// NewSocialLinkService is the constructor for socialLinkService.
func NewSocialLinkService(
	socialLinkRepo repository.SocialLinkRepository,
	logger *slog.Logger,
) usecase.SocialLinkUsecase {
	return &socialLinkService{
		socialLinkRepo: socialLinkRepo,
		logger:         logger,
	}
}

func (srv *socialLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *socialLinkService) ListSocialLinks(ctx context.Context) ([]*entity.SocialLink, error) {
	links, err := srv.socialLinkRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social links")
	}

	return links, nil
}

func (srv *socialLinkService) GetSocialLink(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	link, err := srv.socialLinkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSocialLinkError(err, "failed to get social link")
	}

	return link, nil
}

func (srv *socialLinkService) CreateSocialLink(ctx context.Context, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	link, err := socialLinkFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.socialLinkRepo.Create(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to create social link")
	}

	srv.log(ctx).Info("Social link created", slog.Any("socialLinkID", link.ID), slog.String("label", link.Label))

	return link, nil
}

func (srv *socialLinkService) UpdateSocialLink(ctx context.Context, id uuid.UUID, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	link, err := socialLinkFromInput(input)
	if err != nil {
		return nil, err
	}
	link.ID = id

	if err := srv.socialLinkRepo.Update(ctx, link); err != nil {
		return nil, mapSocialLinkError(err, "failed to update social link")
	}

	updated, err := srv.socialLinkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapSocialLinkError(err, "failed to reload social link")
	}

	return updated, nil
}

func (srv *socialLinkService) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	if err := srv.socialLinkRepo.Delete(ctx, id); err != nil {
		return mapSocialLinkError(err, "failed to delete social link")
	}

	srv.log(ctx).Info("Social link deleted", slog.Any("socialLinkID", id))

	return nil
}

func socialLinkFromInput(input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	link := &entity.SocialLink{
		Label: strings.TrimSpace(input.Label),
		Href:  strings.TrimSpace(input.Href),
	}

	if err := requireFields(field{"label", link.Label}, field{"href", link.Href}); err != nil {
		return nil, err
	}

	parsed, err := url.Parse(link.Href)
	if err != nil || parsed.Scheme == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("href must be an absolute URL")
	}

	return link, nil
}

func mapSocialLinkError(err error, message string) error {
	if errors.Is(err, repository.ErrSocialLinkNotFound) {
		return domainerrors.ErrSocialLinkNotFound
	}

	return errors.Wrap(err, message)
}
