package middleware

import (
	"net/http"

	"folio/config"
	"folio/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewAuthRateLimiter throttles unauthenticated auth routes per client IP.
// A negative rate disables the limiter. Config defaults turn an unset (zero) rate into 1 per second.
func NewAuthRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	limits := cfg.Auth.RateLimit
	if limits.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limits.RequestsPerSecond),
		Burst:     limits.Burst,
		ExpiresIn: limits.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Client could not be identified", nil)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many attempts, try again later", nil)
		},
	})
}
