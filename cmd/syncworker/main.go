package main

import (
	"context"
	"log/slog"
	"os"

	"wearsync/config"
	"wearsync/internal/delivery"
	"wearsync/internal/delivery/worker"
	"wearsync/internal/delivery/worker/handler"
	"wearsync/internal/infra/archive"
	"wearsync/internal/infra/crypto"
	"wearsync/internal/infra/gateway"
	logs "wearsync/internal/infra/log"
	"wearsync/internal/infra/notification"
	"wearsync/internal/infra/oauth"
	"wearsync/internal/infra/persistence/postgres"
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
		injectHandler(),
		injectDelivery(),
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
			oauth.NewExchanger,
			crypto.NewSealer,
			gateway.NewClient,
		),
		archive.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewSyncNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewScheduledHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
