package impl

import (
	"context"
	"log/slog"

	"wearsync/internal/domain/entity"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// syncMetrics holds the sync instruments. A nil instrument is skipped.
type syncMetrics struct {
	duration      metric.Float64Histogram
	outcomes      metric.Int64Counter
	recordsStored metric.Int64Counter
}

func newSyncMetrics(logger *slog.Logger) *syncMetrics {
	meter := otel.Meter(syncInstrumentationName)
	m := &syncMetrics{}

	var err error
	if m.duration, err = meter.Float64Histogram(
		"wearsync.sync.duration",
		metric.WithDescription("Duration of provider syncs in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		logger.Warn("Failed to create sync duration histogram", slog.Any("error", err))
	}

	if m.outcomes, err = meter.Int64Counter(
		"wearsync.sync.outcomes",
		metric.WithDescription("Total number of finished syncs by status"),
		metric.WithUnit("{syncs}"),
	); err != nil {
		logger.Warn("Failed to create sync outcome counter", slog.Any("error", err))
	}

	if m.recordsStored, err = meter.Int64Counter(
		"wearsync.sync.records_stored",
		metric.WithDescription("Total number of health records stored by syncs"),
		metric.WithUnit("{records}"),
	); err != nil {
		logger.Warn("Failed to create records stored counter", slog.Any("error", err))
	}

	return m
}

func (m *syncMetrics) record(ctx context.Context, providerID entity.ProviderID, history *entity.DeviceSyncHistory) {
	attrs := metric.WithAttributes(
		attribute.String("provider", string(providerID)),
		attribute.String("sync_type", string(history.SyncType)),
		attribute.String("status", string(history.Status)),
	)

	if m.duration != nil {
		m.duration.Record(ctx, float64(history.DurationMs), attrs)
	}
	if m.outcomes != nil {
		m.outcomes.Add(ctx, 1, attrs)
	}
	if m.recordsStored != nil && history.RecordsStored > 0 {
		m.recordsStored.Add(ctx, int64(history.RecordsStored), attrs)
	}
}
