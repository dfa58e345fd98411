// Package telemetry sets up OpenTelemetry tracing and metrics exported over OTLP/gRPC.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"wearsync/config"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/fx"
)

const exportTimeout = 30 * time.Second

// Telemetry holds the installed providers. Both are nil when export is disabled.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

// Params holds dependencies for telemetry, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New installs global tracer and meter providers and flushes them on stop.
func New(params Params) (*Telemetry, error) {
	cfg := params.Config.Telemetry
	logger := params.Logger

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg == nil || !cfg.Enabled {
		logger.Info("Telemetry export disabled")

		return &Telemetry{}, nil
	}

	res, err := resource.New(params.Ctx,
		resource.WithAttributes(
			semconv.ServiceName(params.Config.Env.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("deployment.environment", params.Config.Env.Env),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "telemetry resource")
	}

	t := &Telemetry{}

	if t.TracerProvider, err = initTracer(params.Ctx, cfg, res); err != nil {
		logger.Warn("Failed to initialize tracer, continuing without tracing", slog.Any("error", err))
	} else {
		otel.SetTracerProvider(t.TracerProvider)
	}

	if t.MeterProvider, err = initMeter(params.Ctx, cfg, res); err != nil {
		logger.Warn("Failed to initialize meter, continuing without metrics", slog.Any("error", err))
	} else {
		otel.SetMeterProvider(t.MeterProvider)
	}

	logger.Info("Telemetry initialized", slog.String("endpoint", cfg.OTLPEndpoint))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down telemetry")

			return t.Shutdown(ctx)
		},
	})

	return t, nil
}

func initTracer(ctx context.Context, cfg *config.TelemetryConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithTimeout(exportTimeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithBatchTimeout(5*time.Second),
			sdktrace.WithMaxExportBatchSize(512),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	), nil
}

func initMeter(ctx context.Context, cfg *config.TelemetryConfig, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithTimeout(exportTimeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(30*time.Second),
		)),
		sdkmetric.WithResource(res),
	), nil
}

// Shutdown flushes and stops both providers
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.WithStack(errs[0])
	}

	return nil
}

// Module provides telemetry and makes sure it is installed before the servers start
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(*Telemetry) {}),
)
