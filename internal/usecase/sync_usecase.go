package usecase

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncItem is one device of a batch sync.
type SyncItem struct {
	UserID    uuid.UUID
	DeviceID  uuid.UUID
	DataTypes []entity.DataType
	SyncType  entity.SyncType
}

// BatchResult is the settled outcome of one SyncItem.
type BatchResult struct {
	DeviceID uuid.UUID
	History  *entity.DeviceSyncHistory
	Err      error
}

// SyncUsecase orchestrates provider syncs.
type SyncUsecase interface {
	// TriggerSync runs one sync for a device and waits for its outcome.
	TriggerSync(ctx context.Context, userID, deviceID uuid.UUID, dataTypes []entity.DataType, syncType entity.SyncType) (*entity.DeviceSyncHistory, error)

	// RequestSync queues an auxiliary sync of several devices and returns the request id.
	RequestSync(ctx context.Context, userID uuid.UUID, deviceIDs []uuid.UUID, dataTypes []entity.DataType) (string, error)

	// SyncBatch syncs every item; one failure never affects another.
	SyncBatch(ctx context.Context, items []SyncItem) []BatchResult

	// SyncDueDevices syncs every device whose auto sync interval has elapsed at now.
	SyncDueDevices(ctx context.Context, now time.Time) ([]BatchResult, error)

	// ResolveStuckSyncs fails devices left in syncing past the watchdog limit.
	ResolveStuckSyncs(ctx context.Context, now time.Time) (int, error)

	// GetSyncHistory returns the latest sync attempts of a device, newest first.
	GetSyncHistory(ctx context.Context, userID, deviceID uuid.UUID, limit int) ([]*entity.DeviceSyncHistory, error)
}

// SyncNotifier tells the user about a finished sync.
type SyncNotifier interface {
	// NotifySyncResult sends a push notification if the device preferences ask for one.
	NotifySyncResult(ctx context.Context, device *entity.ConnectedDevice, history *entity.DeviceSyncHistory) error
}
