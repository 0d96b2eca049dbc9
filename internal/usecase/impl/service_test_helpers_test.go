package impl

import (
	"io"
	"log/slog"
	"time"

	"folio/config"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return testNow
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Username:          "admin",
			BcryptCost:        4,
			SessionTTL:        2 * time.Minute,
			ResetTokenTTL:     time.Hour,
			MinPasswordLength: 8,
			ResetURL:          "https://example.com/admin/reset",
		},
		Fetch: &config.FetchConfig{
			Timeout:  time.Second,
			MaxBytes: 1024,
		},
		Gallery: &config.GalleryConfig{
			ImportConcurrency: 2,
			OrphanGracePeriod: time.Hour,
			ListCacheMaxAge:   time.Hour,
		},
		Assets: &config.AssetsConfig{
			FaviconMaxBytes: 64,
			OGImageMaxBytes: 128,
		},
		Housekeeping: &config.HousekeepingConfig{
			Enabled:   true,
			Interval:  10 * time.Minute,
			Retention: 24 * time.Hour,
		},
	}
}
