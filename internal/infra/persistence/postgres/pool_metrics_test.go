package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestLogPoolWaits(t *testing.T) {
	tests := []struct {
		name string
		prev sql.DBStats
		cur  sql.DBStats
		want string
	}{
		{name: "no waits", prev: sql.DBStats{WaitCount: 3}, cur: sql.DBStats{WaitCount: 3}},
		{name: "short waits", cur: sql.DBStats{WaitCount: 2, WaitDuration: 4 * time.Millisecond}, want: "level=DEBUG"},
		{name: "long waits", cur: sql.DBStats{WaitCount: 1, WaitDuration: time.Second}, want: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logPoolWaits(context.Background(), logger, tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}

func TestRegisterPoolMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	previous := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { otel.SetMeterProvider(previous) })

	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	registration, err := registerPoolMetrics(sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { _ = registration.Unregister() })

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["wearsync.db.pool.open"])
	assert.True(t, names["wearsync.db.pool.in_use"])
	assert.True(t, names["wearsync.db.pool.waits"])
}
