package handler

import (
	"net/http"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixtures struct {
	handler   *ProfileHandler
	profileUC *mockUsecase.MockProfileUsecase
	echo      *echo.Echo
}

func createTestProfileHandler(t *testing.T) *profileHandlerFixtures {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return &profileHandlerFixtures{
		handler:   NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()}),
		profileUC: profileUC,
		echo:      newTestEcho(),
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("not seeded", func(t *testing.T) {
		fx := createTestProfileHandler(t)
		fx.profileUC.EXPECT().GetProfile(mock.Anything).Return(nil, domainerrors.ErrProfileNotFound)

		rec := serve(fx.echo, fx.handler.GetProfile, jsonRequest(http.MethodGet, "/api/portfolio", ""), nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PROFILE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileHandler(t)
		fx.profileUC.EXPECT().GetProfile(mock.Anything).Return(&entity.Profile{ID: uuid.New(), Name: "Ada"}, nil)

		rec := serve(fx.echo, fx.handler.GetProfile, jsonRequest(http.MethodGet, "/api/portfolio", ""), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out entity.Profile
		decodeData(t, rec, &out)
		assert.Equal(t, "Ada", out.Name)
	})
}

func TestProfileHandler_SaveProfile(t *testing.T) {
	canonical := &usecase.ProfileInput{
		Name:     "Ada Lovelace",
		Title:    "Analyst",
		Email:    "ada@example.com",
		Location: "London",
		Bio:      "Notes on the engine.",
		OGTitle:  "Ada",
	}

	tests := []struct {
		name     string
		body     string
		want     *usecase.ProfileInput
		wantCode int
		wantErr  string
	}{
		{
			name: "current schema without version",
			body: `{"name":"Ada Lovelace","title":"Analyst","email":"ada@example.com","location":"London",
				"bio":"Notes on the engine.","og_title":"Ada"}`,
			want:     canonical,
			wantCode: http.StatusOK,
		},
		{
			name: "current schema with explicit version",
			body: `{"schema_version":2,"name":"Ada Lovelace","title":"Analyst","email":"ada@example.com",
				"location":"London","bio":"Notes on the engine.","og_title":"Ada"}`,
			want:     canonical,
			wantCode: http.StatusOK,
		},
		{
			name: "legacy schema is mapped",
			body: `{"schema_version":1,"name":"Ada Lovelace","career_name":"Analyst","email":"ada@example.com",
				"availability":"London","about":"Notes on the engine.","og_title":"Ada"}`,
			want:     canonical,
			wantCode: http.StatusOK,
		},
		{
			name:     "legacy spelling without version is rejected",
			body:     `{"name":"Ada","career_name":"Analyst","email":"ada@example.com","about":"x"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "unknown version",
			body:     `{"schema_version":3,"name":"Ada"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "UNSUPPORTED_SCHEMA_VERSION",
		},
		{
			name:     "invalid email",
			body:     `{"name":"Ada","title":"Analyst","email":"not-an-email","bio":"x"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "malformed body",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileHandler(t)
			if tt.want != nil {
				fx.profileUC.EXPECT().
					SaveProfile(mock.Anything, tt.want).
					Return(&entity.Profile{ID: uuid.New(), Name: tt.want.Name}, nil)
			}

			rec := serve(fx.echo, fx.handler.SaveProfile, jsonRequest(http.MethodPut, "/api/portfolio", tt.body), newTestSession())

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeEnvelope(t, rec).Error.Code)
			}
		})
	}
}
