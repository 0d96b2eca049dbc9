package handler

import (
	"net/http"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExperienceHandler(t *testing.T) {
	newHandler := func(t *testing.T) (*ExperienceHandler, *mockUsecase.MockExperienceUsecase) {
		uc := mockUsecase.NewMockExperienceUsecase(t)

		return NewExperienceHandler(ExperienceHandlerParams{ExperienceUC: uc, Logger: newDiscardLogger()}), uc
	}

	t.Run("create", func(t *testing.T) {
		h, uc := newHandler(t)
		input := &usecase.ExperienceInput{Company: "Acme", Period: "2021 - present", Description: "Built things"}
		uc.EXPECT().CreateExperience(mock.Anything, input).Return(&entity.Experience{ID: uuid.New(), Company: "Acme"}, nil)

		rec := serve(newTestEcho(), h.CreateExperience, jsonRequest(http.MethodPost, "/api/experiences",
			`{"company":"Acme","period":"2021 - present","description":"Built things"}`), newTestSession())

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create requires every field", func(t *testing.T) {
		h, _ := newHandler(t)

		rec := serve(newTestEcho(), h.CreateExperience, jsonRequest(http.MethodPost, "/api/experiences", `{"company":"Acme"}`), newTestSession())

		require.Equal(t, http.StatusBadRequest, rec.Code)
		details := decodeEnvelope(t, rec).Error.Details
		assert.Contains(t, details, "period is required")
		assert.Contains(t, details, "description is required")
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newHandler(t)

		rec := serve(newTestEcho(), h.GetExperience, jsonRequest(http.MethodGet, "/api/experiences/x", ""), nil, "id", "x")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		h, uc := newHandler(t)
		id := uuid.New()
		uc.EXPECT().DeleteExperience(mock.Anything, id).Return(domainerrors.ErrExperienceNotFound)

		rec := serve(newTestEcho(), h.DeleteExperience, jsonRequest(http.MethodDelete, "/api/experiences/"+id.String(), ""),
			newTestSession(), "id", id.String())

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSocialLinkHandler(t *testing.T) {
	newHandler := func(t *testing.T) (*SocialLinkHandler, *mockUsecase.MockSocialLinkUsecase) {
		uc := mockUsecase.NewMockSocialLinkUsecase(t)

		return NewSocialLinkHandler(SocialLinkHandlerParams{SocialLinkUC: uc, Logger: newDiscardLogger()}), uc
	}

	t.Run("list", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().ListSocialLinks(mock.Anything).Return([]*entity.SocialLink{{Label: "GitHub", Href: "https://github.com/ada"}}, nil)

		rec := serve(newTestEcho(), h.ListSocialLinks, jsonRequest(http.MethodGet, "/api/social-links", ""), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out []entity.SocialLink
		decodeData(t, rec, &out)
		require.Len(t, out, 1)
		assert.Equal(t, "GitHub", out[0].Label)
	})

	t.Run("update requires an absolute href", func(t *testing.T) {
		h, _ := newHandler(t)
		id := uuid.New().String()

		rec := serve(newTestEcho(), h.UpdateSocialLink, jsonRequest(http.MethodPut, "/api/social-links/"+id,
			`{"label":"GitHub","href":"github.com/ada"}`), newTestSession(), "id", id)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "href must be an absolute URL")
	})
}
