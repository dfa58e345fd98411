package usecase

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines the interface for wearable device linking
type DeviceUsecase interface {
	// ConnectDevice starts linking a provider account and returns the consent URL
	ConnectDevice(ctx context.Context, userID uuid.UUID, provider entity.ProviderID, redirectURI string) (*entity.AuthFlow, error)

	// HandleOAuthCallback completes linking with the code returned by the provider
	HandleOAuthCallback(ctx context.Context, userID uuid.UUID, code, state string) (*entity.ConnectedDevice, error)

	// ListDevices retrieves all devices of a user
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedDevice, error)

	// GetDevice retrieves one device owned by the user
	GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.ConnectedDevice, error)

	// DisconnectDevice revokes the link but keeps the device listed
	DisconnectDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.ConnectedDevice, error)

	// DeleteDevice removes the device with its preferences, history and health data
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
