package impl

import (
	"context"
	"net/http"
	"testing"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPushDeviceService_ErrorsMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: ErrPushDeviceNotFound, want: http.StatusNotFound},
		{name: "owned by another user", err: ErrPushDeviceUnauthorized, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr domainerrors.AppError
			require.True(t, errors.As(tt.err, &appErr))
			assert.Equal(t, tt.want, appErr.HTTPCode())
		})
	}
}

func TestPushDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrPushDeviceNotFound)

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, newToken)
	assert.Error(t, err)
	assert.Equal(t, ErrPushDeviceNotFound, err)
}

func TestPushDeviceService_UpdateFCMToken_Unauthorized(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	differentUserID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   differentUserID,
		FCMToken: "old-token",
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, newToken)
	assert.Error(t, err)
	assert.Equal(t, ErrPushDeviceUnauthorized, err)
}

func TestPushDeviceService_UpdateFCMToken_FindError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(nil, errors.New("database error"))

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, newToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find push device by ID")
}

func TestPushDeviceService_UpdateFCMToken_UpdateError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	newToken := "new-fcm-token"

	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.pushDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, newToken).
		Return(errors.New("database error"))

	err := fx.service.UpdateFCMToken(ctx, userID, deviceID, newToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update FCM token")
}

func TestPushDeviceService_DeactivatePushDevice_Unauthorized(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	differentUserID := uuid.New()
	deviceID := uuid.New()

	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   differentUserID,
		IsActive: true,
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	err := fx.service.DeactivatePushDevice(ctx, userID, deviceID)
	assert.Error(t, err)
	assert.Equal(t, ErrPushDeviceUnauthorized, err)
}

func TestPushDeviceService_DeactivatePushDevice_NotFound(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrPushDeviceNotFound)

	err := fx.service.DeactivatePushDevice(ctx, userID, deviceID)
	assert.Error(t, err)
	assert.Equal(t, ErrPushDeviceNotFound, err)
}

func TestPushDeviceService_DeactivatePushDevice_FindError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(nil, errors.New("database error"))

	err := fx.service.DeactivatePushDevice(ctx, userID, deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find push device by ID")
}

func TestPushDeviceService_DeactivatePushDevice_DeleteError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   userID,
		IsActive: true,
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(existingDevice, nil)

	fx.pushDeviceRepo.EXPECT().
		DeletePushDevice(ctx, deviceID).
		Return(errors.New("database error"))

	err := fx.service.DeactivatePushDevice(ctx, userID, deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete push device")
}

func TestPushDeviceService_RegisterPushDevice_FindError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.PushDeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	expectedErr := errors.New("database error")
	fx.pushDeviceRepo.EXPECT().
		FindPushDevicesByUser(ctx, userID).
		Return(nil, expectedErr)

	device, err := fx.service.RegisterPushDevice(ctx, userID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find push devices by user")
}

func TestPushDeviceService_GetPushDevices_Error(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.pushDeviceRepo.EXPECT().
		FindActivePushDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	devices, err := fx.service.GetPushDevices(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, devices)
	assert.Contains(t, err.Error(), "failed to find active push devices by user")
}

func TestPushDeviceService_RegisterPushDevice_UpdateExisting_UpdateError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	deviceInfo := &usecase.PushDeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDevicesByUser(ctx, userID).
		Return([]*entity.PushDevice{existingDevice}, nil)

	fx.pushDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(errors.New("database error"))

	device, err := fx.service.RegisterPushDevice(ctx, userID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to update FCM token")
}

func TestPushDeviceService_RegisterPushDevice_UpdateExisting_FindByIDError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.PushDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	deviceInfo := &usecase.PushDeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDevicesByUser(ctx, userID).
		Return([]*entity.PushDevice{existingDevice}, nil)

	fx.pushDeviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	fx.pushDeviceRepo.EXPECT().
		FindPushDeviceByID(ctx, deviceID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterPushDevice(ctx, userID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find push device by ID")
}

func TestPushDeviceService_RegisterPushDevice_NewDevice_CreateError(t *testing.T) {
	fx := createTestPushDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.PushDeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.pushDeviceRepo.EXPECT().
		FindPushDevicesByUser(ctx, userID).
		Return([]*entity.PushDevice{}, nil)

	fx.pushDeviceRepo.EXPECT().
		CreatePushDevice(ctx, mock.AnythingOfType("*entity.PushDevice")).
		Return(errors.New("database error"))

	device, err := fx.service.RegisterPushDevice(ctx, userID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to create push device")
}
