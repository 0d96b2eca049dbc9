package middleware

import (
	"strings"

	"folio/internal/delivery/api/response"
	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware admits only requests that carry a valid admin session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate resolves the session token and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := SessionToken(c)
		if token == "" {
			return response.AppError(c, domainerrors.ErrSessionInvalid)
		}

		session, err := m.authUC.RequireSession(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetAdminSession(c, session, token)

		return next(c)
	}
}

// SessionToken reads the token from `Authorization: Bearer` or, failing that, X-Admin-Session.
func SessionToken(c echo.Context) string {
	header := c.Request().Header
	if auth := header.Get(echo.HeaderAuthorization); len(auth) > len(bearerPrefix) &&
		strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(auth[len(bearerPrefix):])
	}

	return strings.TrimSpace(header.Get(deliverycontext.HeaderAdminSession))
}
