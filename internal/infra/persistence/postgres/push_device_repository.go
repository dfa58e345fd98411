package postgres

import (
	"context"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushDeviceRepository implements the repository.PushDeviceRepository interface.
type pushDeviceRepository struct {
	db *gorm.DB
}

// NewPushDeviceRepository is the constructor for pushDeviceRepository.
func NewPushDeviceRepository(db *gorm.DB) repository.PushDeviceRepository {
	return &pushDeviceRepository{
		db: db,
	}
}

// CreatePushDevice persists a new push device for a user.
func (repo *pushDeviceRepository) CreatePushDevice(ctx context.Context, device *entity.PushDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	deviceM := fromPushDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePushDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required push device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindPushDeviceByID retrieves a push device by its unique ID.
func (repo *pushDeviceRepository) FindPushDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error) {
	var deviceM model.PushDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPushDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find push device by ID")
	}

	return toPushDeviceDomain(&deviceM), nil
}

// FindPushDevicesByUser retrieves all push devices for a specific user (including inactive, excluding soft-deleted).
func (repo *pushDeviceRepository) FindPushDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	var deviceModels []*model.PushDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push devices by user")
	}

	return toPushDeviceDomains(deviceModels), nil
}

// FindActivePushDevicesByUser retrieves all active push devices for a specific user.
func (repo *pushDeviceRepository) FindActivePushDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushDevice, error) {
	var deviceModels []*model.PushDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push devices by user")
	}

	return toPushDeviceDomains(deviceModels), nil
}

// UpdateFCMToken updates the FCM token for a specific push device.
func (repo *pushDeviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushDeviceModel{}).
		Where("id = ?", id).
		Update("fcm_token", fcmToken)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePushDevice
		}

		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushDeviceNotFound
	}

	return nil
}

// DeletePushDevice removes a push device by its ID (soft delete).
func (repo *pushDeviceRepository) DeletePushDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPushDeviceDomains(models []*model.PushDeviceModel) []*entity.PushDevice {
	devices := make([]*entity.PushDevice, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toPushDeviceDomain(deviceM))
	}

	return devices
}

// toPushDeviceDomain converts a GORM PushDeviceModel to a domain PushDevice entity.
func toPushDeviceDomain(data *model.PushDeviceModel) *entity.PushDevice {
	if data == nil {
		return nil
	}

	return &entity.PushDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPushDeviceDomain converts a domain PushDevice entity to a GORM PushDeviceModel.
func fromPushDeviceDomain(data *entity.PushDevice) *model.PushDeviceModel {
	if data == nil {
		return nil
	}

	return &model.PushDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
