package main

import (
	"context"
	"log/slog"
	"os"

	"wearsync/config"
	"wearsync/internal/delivery"
	"wearsync/internal/delivery/api"
	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/router/handler"
	"wearsync/internal/infra/archive"
	"wearsync/internal/infra/auth"
	"wearsync/internal/infra/crypto"
	"wearsync/internal/infra/gateway"
	logs "wearsync/internal/infra/log"
	"wearsync/internal/infra/notification"
	"wearsync/internal/infra/oauth"
	"wearsync/internal/infra/persistence/postgres"
	"wearsync/internal/infra/pubsub"
	"wearsync/internal/infra/qrcode"
	"wearsync/internal/infra/telemetry"
	"wearsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		telemetry.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAuthFlowRepository,
			postgres.NewConnectedDeviceRepository,
			postgres.NewSyncHistoryRepository,
			postgres.NewHealthDataRepository,
			postgres.NewSyncPreferencesRepository,
			postgres.NewPushDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			oauth.NewExchanger,
			crypto.NewSealer,
			gateway.NewClient,
			qrcode.New,
		),
		archive.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthFlowService,
			impl.NewDeviceService,
			impl.NewSyncService,
			impl.NewSyncNotificationService,
			impl.NewHealthDataService,
			impl.NewPreferencesService,
			impl.NewPushDeviceService,
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
			handler.NewDeviceHandler,
			handler.NewSyncHandler,
			handler.NewPreferencesHandler,
			handler.NewHealthDataHandler,
			handler.NewPushDeviceHandler,
			handler.NewTestHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
