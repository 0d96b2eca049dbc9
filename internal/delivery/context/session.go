package context

import (
	"log/slog"

	"folio/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderAdminSession is the alternative header carrying the session token.
const HeaderAdminSession = "X-Admin-Session"

// SetAdminSession stores the authenticated session and the token that proved it, and tags the
// request logger with the admin username.
func SetAdminSession(c echo.Context, session *entity.AdminSession, token string) {
	c.Set(string(keyAdminSession), session)
	c.Set(string(keySessionToken), token)

	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("admin", session.Username))
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// GetAdminSession returns the session stored by the auth middleware.
func GetAdminSession(c echo.Context) (*entity.AdminSession, bool) {
	session, ok := c.Get(string(keyAdminSession)).(*entity.AdminSession)

	return session, ok && session != nil
}

// GetSessionToken returns the raw session token of an authenticated request.
func GetSessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(string(keySessionToken)).(string)

	return token, ok && token != ""
}
