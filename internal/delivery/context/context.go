// Package context carries request-scoped values from the HTTP layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key string

const (
	keyRequestID    key = "request_id"
	keyLogger       key = "logger"
	keyAdminSession key = "admin_session"
	keySessionToken key = "session_token"
)

// HeaderXRequestID echoes the correlation ID on every response.
const HeaderXRequestID = "X-Request-Id"

// RequestID returns the ID assigned by the request ID middleware, or a fresh one outside of it.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// BindRequest attaches the request ID and its logger to both the echo context and the request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(keyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), keyRequestID, requestID)
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
