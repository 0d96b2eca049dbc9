package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler *AuthHandler
	authUC  *mockUsecase.MockAuthUsecase
	echo    *echo.Echo
}

func createTestAuthHandler(t *testing.T) *authHandlerFixtures {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return &authHandlerFixtures{
		handler: NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}),
		authUC:  authUC,
		echo:    newTestEcho(),
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the token", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		expires := testNow.Add(2 * time.Minute)
		fx.authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Password: "correct horse"}).
			Return(&usecase.LoginOutput{Token: "abc123", ExpiresAt: expires}, nil)

		rec := serve(fx.echo, fx.handler.Login, jsonRequest(http.MethodPost, "/api/auth/login", `{"password":"correct horse"}`), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out LoginResponse
		decodeData(t, rec, &out)
		assert.Equal(t, "abc123", out.Token)
		assert.True(t, expires.Equal(out.ExpiresAt))
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		rec := serve(fx.echo, fx.handler.Login, jsonRequest(http.MethodPost, "/api/auth/login", `{}`), nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "password is required", env.Error.Details)
	})

	t.Run("wrong password hides details", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.authUC.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("bcrypt mismatch"))

		rec := serve(fx.echo, fx.handler.Login, jsonRequest(http.MethodPost, "/api/auth/login", `{"password":"nope"}`), nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestAuthHandler_VerifyPassword(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.authUC.EXPECT().VerifyPassword(mock.Anything, "guess").Return(false, nil)

	rec := serve(fx.echo, fx.handler.VerifyPassword, jsonRequest(http.MethodPost, "/api/auth/verify-password", `{"password":"guess"}`), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]bool
	decodeData(t, rec, &out)
	assert.Equal(t, map[string]bool{"valid": false}, out)
}

func TestAuthHandler_SessionRoutes(t *testing.T) {
	t.Run("session reports the authenticated session", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		session := newTestSession()

		rec := serve(fx.echo, fx.handler.Session, jsonRequest(http.MethodGet, "/api/auth/session", ""), session)

		require.Equal(t, http.StatusOK, rec.Code)
		var out SessionResponse
		decodeData(t, rec, &out)
		assert.Equal(t, "admin", out.Username)
	})

	t.Run("session without middleware context is rejected", func(t *testing.T) {
		fx := createTestAuthHandler(t)

		rec := serve(fx.echo, fx.handler.Session, jsonRequest(http.MethodGet, "/api/auth/session", ""), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh uses the presented token", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		session := newTestSession()
		refreshed := *session
		refreshed.ExpiresAt = testNow.Add(4 * time.Minute)
		fx.authUC.EXPECT().Refresh(mock.Anything, "raw-token").Return(&refreshed, nil)

		rec := serve(fx.echo, fx.handler.Refresh, jsonRequest(http.MethodPost, "/api/auth/refresh", ""), session)

		require.Equal(t, http.StatusOK, rec.Code)
		var out SessionResponse
		decodeData(t, rec, &out)
		assert.True(t, refreshed.ExpiresAt.Equal(out.ExpiresAt))
	})

	t.Run("logout revokes the presented token", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.authUC.EXPECT().Logout(mock.Anything, "raw-token").Return(nil)

		rec := serve(fx.echo, fx.handler.Logout, jsonRequest(http.MethodPost, "/api/auth/logout", ""), newTestSession())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("change password passes the session", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		session := newTestSession()
		fx.authUC.EXPECT().
			ChangePassword(mock.Anything, session, &usecase.ChangePasswordInput{CurrentPassword: "old-secret", NewPassword: "new-secret"}).
			Return(nil)

		rec := serve(fx.echo, fx.handler.ChangePassword,
			jsonRequest(http.MethodPost, "/api/auth/change-password", `{"current_password":"old-secret","new_password":"new-secret"}`), session)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAuthHandler_Reset(t *testing.T) {
	t.Run("request reports delivery", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.authUC.EXPECT().RequestReset(mock.Anything).
			Return(&usecase.RequestResetOutput{Delivered: true, ExpiresAt: testNow.Add(time.Hour)}, nil)

		rec := serve(fx.echo, fx.handler.RequestReset, jsonRequest(http.MethodPost, "/api/auth/reset-password", ""), nil)

		require.Equal(t, http.StatusAccepted, rec.Code)
		var out map[string]any
		decodeData(t, rec, &out)
		assert.Equal(t, true, out["delivered"])
		assert.NotContains(t, out, "token")
	})

	t.Run("mail unavailable", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.authUC.EXPECT().RequestReset(mock.Anything).Return(nil, domainerrors.ErrMailUnavailable)

		rec := serve(fx.echo, fx.handler.RequestReset, jsonRequest(http.MethodPost, "/api/auth/reset-password", ""), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("perform reset maps token errors", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.authUC.EXPECT().
			PerformReset(mock.Anything, &usecase.PerformResetInput{Token: "tok", NewPassword: "new-secret"}).
			Return(domainerrors.ErrResetTokenUsed)

		rec := serve(fx.echo, fx.handler.PerformReset,
			jsonRequest(http.MethodPost, "/api/auth/perform-reset", `{"token":"tok","new_password":"new-secret"}`), nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "RESET_TOKEN_USED", decodeEnvelope(t, rec).Error.Code)
	})
}
