package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wearsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_Disabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	tel, err := New(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Telemetry: &config.TelemetryConfig{Enabled: false}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, tel.TracerProvider)
	assert.Nil(t, tel.MeterProvider)
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNew_EnabledInstallsProviders(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Telemetry: &config.TelemetryConfig{
		Enabled:        true,
		OTLPEndpoint:   "127.0.0.1:4317",
		ServiceVersion: "test",
		Insecure:       true,
	}}
	cfg.Env.ServiceName = "wearsync-test"

	tel, err := New(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NotNil(t, tel.TracerProvider)
	assert.NotNil(t, tel.MeterProvider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tel.Shutdown(ctx)
}
