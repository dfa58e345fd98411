package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduledHandler serves endpoints called by a scheduler (Cloud Scheduler, cron)
type ScheduledHandler struct {
	logger *slog.Logger
	syncUC usecase.SyncUsecase
	now    func() time.Time
}

// ScheduledHandlerParams holds dependencies for the ScheduledHandler
type ScheduledHandlerParams struct {
	fx.In

	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewScheduledHandler creates a new scheduled job handler
func NewScheduledHandler(params ScheduledHandlerParams) *ScheduledHandler {
	return &ScheduledHandler{
		logger: params.Logger,
		syncUC: params.SyncUC,
		now:    time.Now,
	}
}

// SyncDueDevices runs the scheduled sync of every device whose interval elapsed
func (h *ScheduledHandler) SyncDueDevices(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	results, err := h.syncUC.SyncDueDevices(ctx, h.now())
	if err != nil {
		logger.Error("[Worker] Scheduled sync failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	logger.Info("[Worker] Scheduled sync completed",
		slog.Int("devices", len(results)),
		slog.Int("failed", failed),
	)

	return c.JSON(http.StatusOK, map[string]int{
		"devices": len(results),
		"failed":  failed,
	})
}

// ResolveStuckSyncs fails devices left in the syncing state
func (h *ScheduledHandler) ResolveStuckSyncs(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	resolved, err := h.syncUC.ResolveStuckSyncs(ctx, h.now())
	if err != nil {
		logger.Error("[Worker] Watchdog failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	if resolved > 0 {
		logger.Warn("[Worker] Resolved stuck syncs", slog.Int("resolved", resolved))
	}

	return c.JSON(http.StatusOK, map[string]int{"resolved": resolved})
}
