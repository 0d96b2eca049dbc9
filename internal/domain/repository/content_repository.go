package repository

import (
	"context"

	"folio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for portfolio content persistence.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrSocialLinkNotFound = errors.New("social link not found")
)

// ProfileRepository persists the singleton portfolio profile.
type ProfileRepository interface {
	// Get returns the profile, or ErrProfileNotFound before it has been created.
	Get(ctx context.Context) (*entity.Profile, error)

	// Save creates the profile when none exists and otherwise overwrites the existing row.
	// The ID and timestamps of the passed profile are filled in.
	Save(ctx context.Context, profile *entity.Profile) error
}

// ExperienceRepository persists career timeline entries.
type ExperienceRepository interface {
	// List returns every entry, newest first.
	List(ctx context.Context) ([]*entity.Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)
	Create(ctx context.Context, experience *entity.Experience) error
	Update(ctx context.Context, experience *entity.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// SocialLinkRepository persists outbound profile links.
type SocialLinkRepository interface {
	// List returns every link ordered by label.
	List(ctx context.Context) ([]*entity.SocialLink, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	Create(ctx context.Context, link *entity.SocialLink) error
	Update(ctx context.Context, link *entity.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAll deletes every existing link and inserts the given ones.
	ReplaceAll(ctx context.Context, links []*entity.SocialLink) error
}
