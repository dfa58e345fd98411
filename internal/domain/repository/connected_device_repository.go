package repository

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a connected device is not found.
	ErrDeviceNotFound = errors.New("connected device not found")
)

// ConnectedDeviceRepository defines the interface for connected device database operations.
type ConnectedDeviceRepository interface {
	// UpsertDevice creates the device for (UserID, Provider) or refreshes the existing link.
	// device.ID is set to the stored row's id.
	UpsertDevice(ctx context.Context, device *entity.ConnectedDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.ConnectedDevice, error)

	// FindDeviceByUserAndProvider retrieves the user's device for a provider.
	FindDeviceByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderID) (*entity.ConnectedDevice, error)

	// FindDevicesByUser retrieves all devices of a user, newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedDevice, error)

	// FindDevicesByStatus retrieves every device in one of the given states.
	FindDevicesByStatus(ctx context.Context, statuses []entity.DeviceStatus) ([]*entity.ConnectedDevice, error)

	// FindStuckSyncingDevices retrieves devices still syncing since before updatedBefore.
	FindStuckSyncingDevices(ctx context.Context, updatedBefore time.Time) ([]*entity.ConnectedDevice, error)

	// ReleaseSync saves the outcome of a sync and moves the device to device.Status,
	// only while the stored row is still syncing. It reports whether the row was changed.
	ReleaseSync(ctx context.Context, device *entity.ConnectedDevice) (bool, error)

	// MarkDisconnected drops the credential and marks the device disconnected.
	MarkDisconnected(ctx context.Context, id uuid.UUID) error

	// TransitionStatus moves a device to next only if its current status is one of from.
	// It reports whether the row was changed. This is the per-device sync lock.
	TransitionStatus(ctx context.Context, id uuid.UUID, from []entity.DeviceStatus, next entity.DeviceStatus) (bool, error)

	// DeleteDevice permanently removes a device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
