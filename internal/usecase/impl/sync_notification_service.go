package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/usecase"

	"github.com/pkg/errors"
)

type syncNotificationService struct {
	prefsRepo       repository.SyncPreferencesRepository
	pushDeviceRepo  repository.PushDeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewSyncNotificationService creates a new sync notification service instance
func NewSyncNotificationService(
	logger *slog.Logger,
	prefsRepo repository.SyncPreferencesRepository,
	pushDeviceRepo repository.PushDeviceRepository,
	notificationSvc service.NotificationService,
) usecase.SyncNotifier {
	return &syncNotificationService{
		prefsRepo:       prefsRepo,
		pushDeviceRepo:  pushDeviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// NotifySyncResult sends a push notification if the device preferences ask for one
func (s *syncNotificationService) NotifySyncResult(
	ctx context.Context,
	device *entity.ConnectedDevice,
	history *entity.DeviceSyncHistory,
) error {
	prefs, err := s.prefsRepo.FindPreferences(ctx, device.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load sync preferences")
	}

	if !wantsNotification(prefs, history) {
		return nil
	}

	pushDevices, err := s.pushDeviceRepo.FindActivePushDevicesByUser(ctx, device.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to find push devices")
	}
	if len(pushDevices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(pushDevices))
	pushDeviceMap := make(map[string]*entity.PushDevice, len(pushDevices)) // token -> push device
	for _, pushDevice := range pushDevices {
		tokens = append(tokens, pushDevice.FCMToken)
		pushDeviceMap[pushDevice.FCMToken] = pushDevice
	}

	title, body := syncNotificationText(device, history)
	msg := service.PushMessage{Title: title, Body: body, Data: map[string]string{
		"device_id":      device.ID.String(),
		"provider":       string(device.Provider),
		"sync_id":        history.ID.String(),
		"status":         string(history.Status),
		"records_stored": strconv.Itoa(history.RecordsStored),
	}}
	if history.ErrorCode != "" {
		msg.Data["error_code"] = history.ErrorCode
	}

	var (
		totalSent     = 0
		totalFailed   = 0
		invalidTokens []string
	)

	for batch := range slices.Chunk(tokens, service.MaxPushTokens) {
		report, err := s.notificationSvc.SendPush(ctx, batch, msg)
		if err != nil {
			// Keep going with the other batches
			totalFailed += len(batch)
			s.log(ctx).Warn("Failed to send notification batch", slog.Any("error", err))

			continue
		}

		totalSent += report.Sent
		totalFailed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	// Phones whose token is no longer registered are removed
	for _, token := range invalidTokens {
		if pushDevice, ok := pushDeviceMap[token]; ok {
			if err := s.pushDeviceRepo.DeletePushDevice(ctx, pushDevice.ID); err != nil {
				s.log(ctx).Warn("Failed to delete invalid push device",
					slog.String("push_device_id", pushDevice.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}

	s.log(ctx).Debug("Sync notification sent",
		slog.String("device_id", device.ID.String()),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return nil
}

func (s *syncNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func wantsNotification(prefs *entity.SyncPreferences, history *entity.DeviceSyncHistory) bool {
	if history.Status == entity.SyncStatusFailed {
		return prefs.NotifyOnError
	}

	return prefs.NotifyOnSync
}

func syncNotificationText(device *entity.ConnectedDevice, history *entity.DeviceSyncHistory) (title, body string) {
	name := device.DisplayName
	if name == "" {
		if p, ok := provider.Lookup(device.Provider); ok {
			name = p.DisplayName
		} else {
			name = string(device.Provider)
		}
	}

	switch history.Status {
	case entity.SyncStatusFailed:
		return "Sync failed", fmt.Sprintf("%s could not be synced: %s", name, history.ErrorMessage)
	case entity.SyncStatusPartial:
		return "Sync partially completed", fmt.Sprintf("%s synced %d records, some data types failed", name, history.RecordsStored)
	default:
		return "Sync completed", fmt.Sprintf("%s synced %d records", name, history.RecordsStored)
	}
}
