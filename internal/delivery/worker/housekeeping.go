// Package worker runs background deliveries that are not driven by requests.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"folio/config"
	"folio/internal/delivery"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

// HousekeepingParams holds dependencies for the housekeeping worker, injected by Fx.
type HousekeepingParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	HousekeepingUC usecase.HousekeepingUsecase
}

type housekeepingWorker struct {
	housekeepingUC usecase.HousekeepingUsecase
	interval       time.Duration
	enabled        bool
	logger         *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingWorker purges stale sessions and reset tokens on a fixed interval.
func NewHousekeepingWorker(params HousekeepingParams) delivery.Delivery {
	w := newHousekeepingWorker(params.HousekeepingUC, params.Cfg.Housekeeping, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

func newHousekeepingWorker(uc usecase.HousekeepingUsecase, cfg *config.HousekeepingConfig, logger *slog.Logger) *housekeepingWorker {
	return &housekeepingWorker{
		housekeepingUC: uc,
		interval:       cfg.Interval,
		enabled:        cfg.Enabled && cfg.Interval > 0,
		logger:         logger.With(slog.String("worker", "housekeeping")),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Serve runs until ctx is cancelled or the worker is stopped. A failed purge is logged and retried on the next tick.
func (w *housekeepingWorker) Serve(ctx context.Context) error {
	defer close(w.doneCh)

	if !w.enabled {
		w.logger.Info("Housekeeping disabled")

		return nil
	}

	w.logger.Info("Starting housekeeping worker", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *housekeepingWorker) runOnce(ctx context.Context) {
	out, err := w.housekeepingUC.Purge(ctx)
	if err != nil {
		w.logger.Error("Housekeeping purge failed", slog.Any("error", err))

		return
	}

	w.logger.Debug("Housekeeping purge finished",
		slog.Int64("sessions", out.Sessions),
		slog.Int64("resetTokens", out.ResetTokens),
	)
}

func (w *housekeepingWorker) stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stopCh) })

	select {
	case <-w.doneCh:
	case <-ctx.Done():
	}

	return nil
}
