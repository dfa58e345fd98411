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
)

// syncPreferencesRepository implements the repository.SyncPreferencesRepository interface.
type syncPreferencesRepository struct {
	db *gorm.DB
}

// NewSyncPreferencesRepository is the constructor for syncPreferencesRepository.
func NewSyncPreferencesRepository(db *gorm.DB) repository.SyncPreferencesRepository {
	return &syncPreferencesRepository{
		db: db,
	}
}

// FindPreferences retrieves the preferences of a device.
func (repo *syncPreferencesRepository) FindPreferences(ctx context.Context, deviceID uuid.UUID) (*entity.SyncPreferences, error) {
	var prefsM model.SyncPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find sync preferences")
	}

	return toSyncPreferencesDomain(&prefsM), nil
}

// SavePreferences creates or replaces the preferences of a device.
func (repo *syncPreferencesRepository) SavePreferences(ctx context.Context, prefs *entity.SyncPreferences) error {
	prefsM := fromSyncPreferencesDomain(prefs)
	prefsM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"auto_sync_enabled",
				"sync_frequency_minutes",
				"data_types_enabled",
				"sync_only_wifi",
				"notify_on_sync",
				"notify_on_error",
				"backfill_days",
				"updated_at",
			}),
		}).
		Create(prefsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save sync preferences")
	}

	prefs.UpdatedAt = prefsM.UpdatedAt
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = prefsM.CreatedAt
	}

	return nil
}

// CreateDefaultPreferences stores prefs only if the device has none yet.
func (repo *syncPreferencesRepository) CreateDefaultPreferences(ctx context.Context, prefs *entity.SyncPreferences) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromSyncPreferencesDomain(prefs)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create default sync preferences")
	}

	return nil
}

// FindAutoSyncPreferences retrieves all preferences with auto sync enabled.
func (repo *syncPreferencesRepository) FindAutoSyncPreferences(ctx context.Context) ([]*entity.SyncPreferences, error) {
	var prefsModels []*model.SyncPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("auto_sync_enabled = ?", true).
		Find(&prefsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find auto sync preferences")
	}

	prefs := make([]*entity.SyncPreferences, 0, len(prefsModels))
	for _, prefsM := range prefsModels {
		prefs = append(prefs, toSyncPreferencesDomain(prefsM))
	}

	return prefs, nil
}

// DeletePreferences removes the preferences of a device.
func (repo *syncPreferencesRepository) DeletePreferences(ctx context.Context, deviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.SyncPreferencesModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sync preferences")
	}

	return nil
}

// --- Mapper Functions ---

// toSyncPreferencesDomain converts a GORM SyncPreferencesModel to a domain SyncPreferences entity.
func toSyncPreferencesDomain(data *model.SyncPreferencesModel) *entity.SyncPreferences {
	if data == nil {
		return nil
	}

	dataTypes := dataTypesFromJSON(data.DataTypesEnabled)
	if dataTypes == nil {
		dataTypes = []entity.DataType{}
	}

	return &entity.SyncPreferences{
		DeviceID:             data.DeviceID,
		AutoSyncEnabled:      data.AutoSyncEnabled,
		SyncFrequencyMinutes: data.SyncFrequencyMinutes,
		DataTypesEnabled:     dataTypes,
		SyncOnlyWifi:         data.SyncOnlyWifi,
		NotifyOnSync:         data.NotifyOnSync,
		NotifyOnError:        data.NotifyOnError,
		BackfillDays:         data.BackfillDays,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromSyncPreferencesDomain converts a domain SyncPreferences entity to a GORM SyncPreferencesModel.
func fromSyncPreferencesDomain(data *entity.SyncPreferences) *model.SyncPreferencesModel {
	if data == nil {
		return nil
	}

	dataTypes := data.DataTypesEnabled
	if dataTypes == nil {
		dataTypes = []entity.DataType{}
	}

	return &model.SyncPreferencesModel{
		DeviceID:             data.DeviceID,
		AutoSyncEnabled:      data.AutoSyncEnabled,
		SyncFrequencyMinutes: data.SyncFrequencyMinutes,
		DataTypesEnabled:     toJSONColumn(dataTypes),
		SyncOnlyWifi:         data.SyncOnlyWifi,
		NotifyOnSync:         data.NotifyOnSync,
		NotifyOnError:        data.NotifyOnError,
		BackfillDays:         data.BackfillDays,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
