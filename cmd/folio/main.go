package main

import (
	"context"
	"log/slog"
	"os"

	"folio/config"
	"folio/internal/delivery"
	"folio/internal/delivery/api"
	"folio/internal/delivery/api/middleware"
	"folio/internal/delivery/api/router/handler"
	"folio/internal/delivery/worker"
	"folio/internal/domain/lifecycle"
	"folio/internal/infra/auth"
	"folio/internal/infra/fetch"
	logs "folio/internal/infra/log"
	"folio/internal/infra/mail"
	"folio/internal/infra/persistence/postgres"
	"folio/internal/infra/storage"
	"folio/internal/usecase"
	"folio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			ensureProvisioned,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewSessionRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewProfileRepository,
			postgres.NewExperienceRepository,
			postgres.NewSocialLinkRepository,
			postgres.NewGalleryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenService,
			mail.NewSMTPMailer,
			fetch.NewImageFetcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewHousekeepingService,
			impl.NewProfileService,
			impl.NewExperienceService,
			impl.NewSocialLinkService,
			impl.NewGalleryService,
			impl.NewAssetService,
			impl.NewMetadataService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewExperienceHandler,
			handler.NewSocialLinkHandler,
			handler.NewGalleryHandler,
			handler.NewAssetHandler,
			handler.NewMetadataHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewHousekeepingWorker,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// ensureProvisioned stores the configured bootstrap credential before any request is served.
func ensureProvisioned(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return authUC.EnsureProvisioned(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
