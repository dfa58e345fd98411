// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for push device persistence.
var (
	// ErrPushDeviceNotFound is returned when a push device is not found.
	ErrPushDeviceNotFound = errors.New("push device not found")
	// ErrDuplicatePushDevice is returned when trying to create a push device that already exists.
	ErrDuplicatePushDevice = errors.New("push device already exists")
)

// PushDeviceRepository defines the interface for push device database operations.
type PushDeviceRepository interface {
	// CreatePushDevice persists a new push device for a user.
	CreatePushDevice(ctx context.Context, device *entity.PushDevice) error

	// FindPushDeviceByID retrieves a push device by its unique ID.
	FindPushDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error)

	// FindPushDevicesByUser retrieves all push devices for a specific user (including inactive).
	FindPushDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// FindActivePushDevicesByUser retrieves all active push devices for a specific user.
	FindActivePushDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// UpdateFCMToken updates the FCM token for a specific push device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeletePushDevice removes a push device by its ID (soft delete).
	DeletePushDevice(ctx context.Context, id uuid.UUID) error
}
