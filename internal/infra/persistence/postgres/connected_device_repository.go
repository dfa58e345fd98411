package postgres

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Columns refreshed when a provider account is linked again.
var deviceRelinkColumns = []string{
	"provider_user_id",
	"display_name",
	"device_type",
	"status",
	"scopes",
	"last_error",
	"error_count",
	"metadata",
	"credential",
	"token_expires_at",
	"connected_at",
	"updated_at",
}

// Columns written when a sync releases its device.
var syncReleaseColumns = []string{
	"status",
	"last_sync_at",
	"error_count",
	"last_error",
	"credential",
	"token_expires_at",
	"updated_at",
}

// connectedDeviceRepository implements the repository.ConnectedDeviceRepository interface.
type connectedDeviceRepository struct {
	db *gorm.DB
}

// NewConnectedDeviceRepository is the constructor for connectedDeviceRepository.
func NewConnectedDeviceRepository(db *gorm.DB) repository.ConnectedDeviceRepository {
	return &connectedDeviceRepository{
		db: db,
	}
}

// UpsertDevice creates the device for (UserID, Provider) or refreshes the existing link.
func (repo *connectedDeviceRepository) UpsertDevice(ctx context.Context, device *entity.ConnectedDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	deviceM := fromConnectedDeviceDomain(device)
	deviceM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns(deviceRelinkColumns),
		}).
		Create(deviceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert connected device")
	}

	// The conflicting row keeps its own id, so read it back.
	stored, err := repo.FindDeviceByUserAndProvider(ctx, device.UserID, device.Provider)
	if err != nil {
		return err
	}
	*device = *stored

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *connectedDeviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.ConnectedDevice, error) {
	var deviceM model.ConnectedDeviceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find connected device by ID")
	}

	return toConnectedDeviceDomain(&deviceM), nil
}

// FindDeviceByUserAndProvider retrieves the user's device for a provider.
func (repo *connectedDeviceRepository) FindDeviceByUserAndProvider(
	ctx context.Context,
	userID uuid.UUID,
	provider entity.ProviderID,
) (*entity.ConnectedDevice, error) {
	var deviceM model.ConnectedDeviceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND provider = ?", userID, string(provider)).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find connected device by user and provider")
	}

	return toConnectedDeviceDomain(&deviceM), nil
}

// FindDevicesByUser retrieves all devices of a user, newest first.
func (repo *connectedDeviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedDevice, error) {
	var deviceModels []*model.ConnectedDeviceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connected devices by user")
	}

	return toConnectedDeviceDomains(deviceModels), nil
}

// FindDevicesByStatus retrieves every device in one of the given states.
func (repo *connectedDeviceRepository) FindDevicesByStatus(
	ctx context.Context,
	statuses []entity.DeviceStatus,
) ([]*entity.ConnectedDevice, error) {
	if len(statuses) == 0 {
		return []*entity.ConnectedDevice{}, nil
	}

	var deviceModels []*model.ConnectedDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("status IN ?", statusStrings(statuses)).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connected devices by status")
	}

	return toConnectedDeviceDomains(deviceModels), nil
}

// FindStuckSyncingDevices retrieves devices still syncing since before updatedBefore.
func (repo *connectedDeviceRepository) FindStuckSyncingDevices(
	ctx context.Context,
	updatedBefore time.Time,
) ([]*entity.ConnectedDevice, error) {
	var deviceModels []*model.ConnectedDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", string(entity.DeviceStatusSyncing), updatedBefore).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stuck syncing devices")
	}

	return toConnectedDeviceDomains(deviceModels), nil
}

// ReleaseSync saves the outcome of a sync and moves the device to device.Status,
// only while the stored row is still syncing.
func (repo *connectedDeviceRepository) ReleaseSync(ctx context.Context, device *entity.ConnectedDevice) (bool, error) {
	deviceM := fromConnectedDeviceDomain(device)
	deviceM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ConnectedDeviceModel{}).
		Where("id = ? AND status = ?", device.ID, string(entity.DeviceStatusSyncing)).
		Select(syncReleaseColumns).
		Updates(deviceM)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to release syncing device")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	device.UpdatedAt = deviceM.UpdatedAt

	return true, nil
}

// MarkDisconnected drops the credential and marks the device disconnected.
func (repo *connectedDeviceRepository) MarkDisconnected(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConnectedDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           string(entity.DeviceStatusDisconnected),
			"credential":       nil,
			"token_expires_at": nil,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to disconnect device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// TransitionStatus moves a device to next only if its current status is one of from.
func (repo *connectedDeviceRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from []entity.DeviceStatus,
	next entity.DeviceStatus,
) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConnectedDeviceModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(from)).
		Updates(map[string]any{
			"status":     string(next),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to transition device status")
	}

	return result.RowsAffected == 1, nil
}

// DeleteDevice permanently removes a device.
func (repo *connectedDeviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ConnectedDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete connected device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func statusStrings(statuses []entity.DeviceStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	return values
}

// --- Mapper Functions ---

func toConnectedDeviceDomains(models []*model.ConnectedDeviceModel) []*entity.ConnectedDevice {
	devices := make([]*entity.ConnectedDevice, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toConnectedDeviceDomain(deviceM))
	}

	return devices
}

// toConnectedDeviceDomain converts a GORM ConnectedDeviceModel to a domain ConnectedDevice entity.
func toConnectedDeviceDomain(data *model.ConnectedDeviceModel) *entity.ConnectedDevice {
	if data == nil {
		return nil
	}

	return &entity.ConnectedDevice{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderID(data.Provider),
		ProviderUserID: data.ProviderUserID,
		DisplayName:    data.DisplayName,
		DeviceType:     data.DeviceType,
		Status:         entity.DeviceStatus(data.Status),
		Scopes:         stringsFromJSON(data.Scopes),
		LastSyncAt:     data.LastSyncAt,
		LastError:      data.LastError,
		ErrorCount:     data.ErrorCount,
		Metadata:       mapFromJSON(data.Metadata),
		ConnectedAt:    data.ConnectedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Credential:     data.Credential,
		TokenExpiresAt: data.TokenExpiresAt,
	}
}

// fromConnectedDeviceDomain converts a domain ConnectedDevice entity to a GORM ConnectedDeviceModel.
func fromConnectedDeviceDomain(data *entity.ConnectedDevice) *model.ConnectedDeviceModel {
	if data == nil {
		return nil
	}

	deviceM := &model.ConnectedDeviceModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		DisplayName:    data.DisplayName,
		DeviceType:     data.DeviceType,
		Status:         string(data.Status),
		LastSyncAt:     data.LastSyncAt,
		LastError:      data.LastError,
		ErrorCount:     data.ErrorCount,
		Credential:     data.Credential,
		TokenExpiresAt: data.TokenExpiresAt,
		ConnectedAt:    data.ConnectedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Scopes != nil {
		deviceM.Scopes = toJSONColumn(data.Scopes)
	}
	if data.Metadata != nil {
		deviceM.Metadata = toJSONColumn(data.Metadata)
	}

	return deviceM
}
