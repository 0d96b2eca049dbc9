package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUsecase "folio/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionToken(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "bearer", headers: map[string]string{echo.HeaderAuthorization: "Bearer abc"}, want: "abc"},
		{name: "bearer is case insensitive", headers: map[string]string{echo.HeaderAuthorization: "bearer abc"}, want: "abc"},
		{name: "admin session header", headers: map[string]string{deliverycontext.HeaderAdminSession: " def "}, want: "def"},
		{
			name: "bearer wins over header",
			headers: map[string]string{
				echo.HeaderAuthorization:           "Bearer abc",
				deliverycontext.HeaderAdminSession: "def",
			},
			want: "abc",
		},
		{name: "other scheme is ignored", headers: map[string]string{echo.HeaderAuthorization: "Basic YWRtaW4="}, want: ""},
		{name: "none", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, SessionToken(c))
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	okHandler := func(c echo.Context) error {
		session, ok := deliverycontext.GetAdminSession(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		token, _ := deliverycontext.GetSessionToken(c)

		return c.String(http.StatusOK, session.Username+":"+token)
	}

	t.Run("valid session reaches the handler", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().RequireSession(mock.Anything, "abc").
			Return(&entity.AdminSession{Username: "admin", ExpiresAt: time.Now().Add(time.Minute)}, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer abc")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin:abc", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
	})

	t.Run("expired session", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().RequireSession(mock.Anything, "old").Return(nil, domainerrors.ErrSessionInvalid)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderAdminSession, "old")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
