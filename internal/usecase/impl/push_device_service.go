package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrPushDeviceNotFound is returned when a push device is not found
	ErrPushDeviceNotFound = domainerrors.ErrNotFound.WrapMessage("push device not found")
	// ErrPushDeviceUnauthorized is returned when a user tries to access a push device they don't own
	ErrPushDeviceUnauthorized = domainerrors.ErrForbidden.WrapMessage("unauthorized to access this push device")
)

type pushDeviceService struct {
	pushDeviceRepo repository.PushDeviceRepository
}

// NewPushDeviceService creates a new push device service instance
func NewPushDeviceService(pushDeviceRepo repository.PushDeviceRepository) usecase.PushDeviceUsecase {
	return &pushDeviceService{
		pushDeviceRepo: pushDeviceRepo,
	}
}

// RegisterPushDevice registers a new phone or updates the token of an existing one
func (s *pushDeviceService) RegisterPushDevice(ctx context.Context, userID uuid.UUID, info *usecase.PushDeviceInfo) (*entity.PushDevice, error) {
	devices, err := s.pushDeviceRepo.FindPushDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find push devices by user: %w", err)
	}

	// Same client device id means the app reinstalled or rotated its token
	for _, device := range devices {
		if device.DeviceID == info.DeviceID {
			if err := s.pushDeviceRepo.UpdateFCMToken(ctx, device.ID, info.FCMToken); err != nil {
				return nil, fmt.Errorf("failed to update FCM token: %w", err)
			}
			updated, err := s.pushDeviceRepo.FindPushDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to find push device by ID: %w", err)
			}

			return updated, nil
		}
	}

	now := time.Now()
	device := &entity.PushDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pushDeviceRepo.CreatePushDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create push device: %w", err)
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific phone
func (s *pushDeviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, pushDeviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedPushDevice(ctx, userID, pushDeviceID); err != nil {
		return err
	}

	if err := s.pushDeviceRepo.UpdateFCMToken(ctx, pushDeviceID, fcmToken); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}

	return nil
}

// GetPushDevices retrieves all active phones for a user
func (s *pushDeviceService) GetPushDevices(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	devices, err := s.pushDeviceRepo.FindActivePushDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active push devices by user: %w", err)
	}

	return devices, nil
}

// DeactivatePushDevice removes a phone (soft delete)
func (s *pushDeviceService) DeactivatePushDevice(ctx context.Context, userID, pushDeviceID uuid.UUID) error {
	if _, err := s.ownedPushDevice(ctx, userID, pushDeviceID); err != nil {
		return err
	}

	if err := s.pushDeviceRepo.DeletePushDevice(ctx, pushDeviceID); err != nil {
		return fmt.Errorf("failed to delete push device: %w", err)
	}

	return nil
}

func (s *pushDeviceService) ownedPushDevice(ctx context.Context, userID, pushDeviceID uuid.UUID) (*entity.PushDevice, error) {
	device, err := s.pushDeviceRepo.FindPushDeviceByID(ctx, pushDeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrPushDeviceNotFound) {
			return nil, ErrPushDeviceNotFound
		}

		return nil, fmt.Errorf("failed to find push device by ID: %w", err)
	}

	if device.UserID != userID {
		return nil, ErrPushDeviceUnauthorized
	}

	return device, nil
}
