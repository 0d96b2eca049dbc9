package impl

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSocialLinkService_CreateSocialLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.SocialLinkInput
		wantErr bool
	}{
		{name: "absolute url", input: &usecase.SocialLinkInput{Label: "GitHub", Href: "https://github.com/ada"}},
		{name: "mailto is absolute", input: &usecase.SocialLinkInput{Label: "Mail", Href: "mailto:ada@example.com"}},
		{name: "relative href", input: &usecase.SocialLinkInput{Label: "Blog", Href: "/blog"}, wantErr: true},
		{name: "missing label", input: &usecase.SocialLinkInput{Href: "https://github.com/ada"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			socialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)
			service := NewSocialLinkService(socialLinkRepo, newDiscardLogger())
			if !tt.wantErr {
				socialLinkRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SocialLink")).Return(nil)
			}

			link, err := service.CreateSocialLink(ctx, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.Href, link.Href)
		})
	}
}

func TestSocialLinkService_UpdateSocialLink_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	socialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)
	service := NewSocialLinkService(socialLinkRepo, newDiscardLogger())

	socialLinkRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(l *entity.SocialLink) bool { return l.ID == id })).
		Return(repository.ErrSocialLinkNotFound)

	_, err := service.UpdateSocialLink(ctx, id, &usecase.SocialLinkInput{Label: "GitHub", Href: "https://github.com/ada"})

	assert.ErrorIs(t, err, domainerrors.ErrSocialLinkNotFound)
}

func TestSocialLinkService_ListSocialLinks(t *testing.T) {
	ctx := context.Background()
	socialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)
	service := NewSocialLinkService(socialLinkRepo, newDiscardLogger())
	links := []*entity.SocialLink{{Label: "GitHub"}, {Label: "LinkedIn"}}

	socialLinkRepo.EXPECT().List(ctx).Return(links, nil)

	got, err := service.ListSocialLinks(ctx)

	require.NoError(t, err)
	assert.Equal(t, links, got)
}
