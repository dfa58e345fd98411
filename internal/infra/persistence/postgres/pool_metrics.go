package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wearsync/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	poolInstrumentationName = "wearsync/internal/infra/persistence/postgres"

	// Waits above this per interval are logged as warnings.
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// registerPoolMetrics exports database/sql pool stats as observable gauges.
func registerPoolMetrics(sqlDB *sql.DB) (metric.Registration, error) {
	meter := otel.Meter(poolInstrumentationName)

	open, err := meter.Int64ObservableGauge("wearsync.db.pool.open",
		metric.WithDescription("Open connections"), metric.WithUnit("{connections}"))
	if err != nil {
		return nil, errors.Wrap(err, "open connections gauge")
	}
	inUse, err := meter.Int64ObservableGauge("wearsync.db.pool.in_use",
		metric.WithDescription("Connections in use"), metric.WithUnit("{connections}"))
	if err != nil {
		return nil, errors.Wrap(err, "in use connections gauge")
	}
	waits, err := meter.Int64ObservableCounter("wearsync.db.pool.waits",
		metric.WithDescription("Total number of waits for a free connection"), metric.WithUnit("{waits}"))
	if err != nil {
		return nil, errors.Wrap(err, "wait counter")
	}
	waitTime, err := meter.Float64ObservableCounter("wearsync.db.pool.wait_time",
		metric.WithDescription("Total time spent waiting for a free connection"), metric.WithUnit("ms"))
	if err != nil {
		return nil, errors.Wrap(err, "wait time counter")
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(open, int64(stats.OpenConnections))
		o.ObserveInt64(inUse, int64(stats.InUse))
		o.ObserveInt64(waits, stats.WaitCount)
		o.ObserveFloat64(waitTime, float64(stats.WaitDuration)/float64(time.Millisecond))

		return nil
	}, open, inUse, waits, waitTime)
	if err != nil {
		return nil, errors.Wrap(err, "register pool callback")
	}

	return registration, nil
}

// watchPoolWaits logs when requests had to wait for a pooled connection.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWaits(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWaits(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDuration := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waitDuration >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waitDelta),
		slog.Duration("wait_duration", waitDuration),
		slog.Duration("avg_wait", waitDuration/time.Duration(waitDelta)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
