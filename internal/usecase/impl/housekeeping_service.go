package impl

import (
	"context"
	"log/slog"
	"time"

	"folio/config"
	"folio/internal/domain/repository"
	"folio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// housekeepingService implements the HousekeepingUsecase interface.
type housekeepingService struct {
	sessionRepo repository.SessionRepository
	resetRepo   repository.PasswordResetRepository
	retention   time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// HousekeepingServiceParams holds dependencies for HousekeepingService, injected by Fx.
type HousekeepingServiceParams struct {
	fx.In

	SessionRepo       repository.SessionRepository
	PasswordResetRepo repository.PasswordResetRepository
	Config            *config.Config
	Logger            *slog.Logger
}

// NewHousekeepingService is the constructor for housekeepingService.
func NewHousekeepingService(params HousekeepingServiceParams) usecase.HousekeepingUsecase {
	return &housekeepingService{
		sessionRepo: params.SessionRepo,
		resetRepo:   params.PasswordResetRepo,
		retention:   params.Config.Housekeeping.Retention,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Purge deletes sessions and reset tokens that stopped being usable more than one retention period ago.
func (srv *housekeepingService) Purge(ctx context.Context) (*usecase.PurgeOutput, error) {
	cutoff := srv.now().Add(-srv.retention)

	sessions, err := srv.sessionRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to purge expired sessions")
	}

	resetTokens, err := srv.resetRepo.DeleteStaleBefore(ctx, cutoff)
	if err != nil {
		return &usecase.PurgeOutput{Sessions: sessions}, errors.Wrap(err, "failed to purge stale reset tokens")
	}

	if sessions > 0 || resetTokens > 0 {
		srv.logger.Info("Purged stale auth rows",
			slog.Int64("sessions", sessions),
			slog.Int64("resetTokens", resetTokens),
			slog.Time("cutoff", cutoff),
		)
	}

	return &usecase.PurgeOutput{Sessions: sessions, ResetTokens: resetTokens}, nil
}
