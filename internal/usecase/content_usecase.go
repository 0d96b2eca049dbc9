package usecase

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput is the canonical profile payload.
type ProfileInput struct {
	Name          string
	Title         string
	Email         string
	Location      string
	Bio           string
	OGTitle       string
	OGDescription string
	OGImageURL    string
}

// ExperienceInput defines the editable fields of a timeline entry.
type ExperienceInput struct {
	Company     string
	Period      string
	Description string
}

// SocialLinkInput defines the editable fields of a social link.
type SocialLinkInput struct {
	Label string
	Href  string
}

// SeedInput is the operator supplied content used to initialise an empty site.
type SeedInput struct {
	Profile     ProfileInput
	SocialLinks []SocialLinkInput
	Experiences []ExperienceInput
}

// SeedOutput summarises what a seed run changed.
type SeedOutput struct {
	Profile             *entity.Profile
	SocialLinks         int
	ExperiencesInserted int
}

// ProfileUsecase manages the singleton portfolio profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*entity.Profile, error)
	SaveProfile(ctx context.Context, input *ProfileInput) (*entity.Profile, error)
}

// ExperienceUsecase manages career timeline entries.
type ExperienceUsecase interface {
	ListExperiences(ctx context.Context) ([]*entity.Experience, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	CreateExperience(ctx context.Context, input *ExperienceInput) (*entity.Experience, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, input *ExperienceInput) (*entity.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}

// SocialLinkUsecase manages outbound profile links.
type SocialLinkUsecase interface {
	ListSocialLinks(ctx context.Context) ([]*entity.SocialLink, error)
	GetSocialLink(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	CreateSocialLink(ctx context.Context, input *SocialLinkInput) (*entity.SocialLink, error)
	UpdateSocialLink(ctx context.Context, id uuid.UUID, input *SocialLinkInput) (*entity.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id uuid.UUID) error
}

// SeedUsecase loads initial content.
type SeedUsecase interface {
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)
}
