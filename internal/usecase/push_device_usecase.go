package usecase

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// PushDeviceInfo represents phone information for push registration
type PushDeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// PushDeviceUsecase defines the interface for push device management use cases
type PushDeviceUsecase interface {
	// RegisterPushDevice registers a new phone or updates the token of an existing one
	RegisterPushDevice(ctx context.Context, userID uuid.UUID, info *PushDeviceInfo) (*entity.PushDevice, error)

	// UpdateFCMToken updates the FCM token for a specific phone
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, pushDeviceID uuid.UUID, fcmToken string) error

	// GetPushDevices retrieves all active phones for a user
	GetPushDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error)

	// DeactivatePushDevice removes a phone (soft delete)
	DeactivatePushDevice(ctx context.Context, userID, pushDeviceID uuid.UUID) error
}
