package impl

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedInput() *usecase.SeedInput {
	return &usecase.SeedInput{
		Profile: usecase.ProfileInput{Name: "Ada", Title: "Engineer", Email: "ada@example.com", Bio: "Hello"},
		SocialLinks: []usecase.SocialLinkInput{
			{Label: "GitHub", Href: "https://github.com/ada"},
		},
		Experiences: []usecase.ExperienceInput{
			{Company: "AE", Period: "1842", Description: "Notes"},
			{Company: "Royal Society", Period: "1843", Description: "Translation"},
		},
	}
}

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		existing         int64
		wantInsertedRows int
	}{
		{name: "empty timeline gets experiences", existing: 0, wantInsertedRows: 2},
		{name: "existing timeline is left alone", existing: 4, wantInsertedRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			service := NewSeedService(txManager, newDiscardLogger())

			txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockProfileRepo := mockRepo.NewMockProfileRepository(t)
					mockSocialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)
					mockExperienceRepo := mockRepo.NewMockExperienceRepository(t)

					mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
					mockFactory.EXPECT().NewSocialLinkRepository().Return(mockSocialLinkRepo)
					mockFactory.EXPECT().NewExperienceRepository().Return(mockExperienceRepo)

					mockProfileRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
					mockSocialLinkRepo.EXPECT().
						ReplaceAll(ctx, mock.MatchedBy(func(links []*entity.SocialLink) bool { return len(links) == 1 })).
						Return(nil)
					mockExperienceRepo.EXPECT().Count(ctx).Return(tt.existing, nil)
					if tt.wantInsertedRows > 0 {
						mockExperienceRepo.EXPECT().
							Create(ctx, mock.AnythingOfType("*entity.Experience")).
							Return(nil).
							Times(tt.wantInsertedRows)
					}

					return fn(mockFactory)
				})

			output, err := service.Seed(ctx, seedInput())

			require.NoError(t, err)
			assert.Equal(t, 1, output.SocialLinks)
			assert.Equal(t, tt.wantInsertedRows, output.ExperiencesInserted)
		})
	}
}

func TestSeedService_Seed_RollsBack(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewSeedService(txManager, newDiscardLogger())

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockSocialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)

			mockFactory.EXPECT().NewProfileRepository().Return(mockProfileRepo)
			mockFactory.EXPECT().NewSocialLinkRepository().Return(mockSocialLinkRepo)
			mockProfileRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
			mockSocialLinkRepo.EXPECT().ReplaceAll(ctx, mock.Anything).Return(errors.New("unique violation"))

			return fn(mockFactory)
		})

	_, err := service.Seed(ctx, seedInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to replace social links")
}

func TestSeedService_Seed_InvalidInput(t *testing.T) {
	service := NewSeedService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	input := seedInput()
	input.SocialLinks = append(input.SocialLinks, usecase.SocialLinkInput{Label: "Blog", Href: "blog"})

	_, err := service.Seed(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
