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
	"gorm.io/plugin/dbresolver"
)

const defaultHistoryLimit = 20

// syncHistoryRepository implements the repository.SyncHistoryRepository interface.
type syncHistoryRepository struct {
	db *gorm.DB
}

// NewSyncHistoryRepository is the constructor for syncHistoryRepository.
func NewSyncHistoryRepository(db *gorm.DB) repository.SyncHistoryRepository {
	return &syncHistoryRepository{
		db: db,
	}
}

// AppendHistory stores one sync attempt.
func (repo *syncHistoryRepository) AppendHistory(ctx context.Context, history *entity.DeviceSyncHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromSyncHistoryDomain(history)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append sync history")
	}

	return nil
}

// FindHistoryByDevice returns the latest attempts of a device, newest first.
func (repo *syncHistoryRepository) FindHistoryByDevice(
	ctx context.Context,
	deviceID uuid.UUID,
	limit int,
) ([]*entity.DeviceSyncHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var historyModels []*model.DeviceSyncHistoryModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("device_id = ?", deviceID).
		Order("started_at DESC").
		Limit(limit).
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sync history by device")
	}

	histories := make([]*entity.DeviceSyncHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		histories = append(histories, toSyncHistoryDomain(historyM))
	}

	return histories, nil
}

// DeleteHistoryByDevice removes the history of a deleted device.
func (repo *syncHistoryRepository) DeleteHistoryByDevice(ctx context.Context, deviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.DeviceSyncHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sync history by device")
	}

	return nil
}

// --- Mapper Functions ---

// toSyncHistoryDomain converts a GORM DeviceSyncHistoryModel to a domain DeviceSyncHistory entity.
func toSyncHistoryDomain(data *model.DeviceSyncHistoryModel) *entity.DeviceSyncHistory {
	if data == nil {
		return nil
	}

	return &entity.DeviceSyncHistory{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		UserID:          data.UserID,
		SyncType:        entity.SyncType(data.SyncType),
		Status:          entity.SyncStatus(data.Status),
		DataTypesSynced: dataTypesFromJSON(data.DataTypesSynced),
		RecordsFetched:  data.RecordsFetched,
		RecordsStored:   data.RecordsStored,
		DurationMs:      data.DurationMs,
		ErrorMessage:    data.ErrorMessage,
		ErrorCode:       data.ErrorCode,
		StartedAt:       data.StartedAt,
		CompletedAt:     data.CompletedAt,
	}
}

// fromSyncHistoryDomain converts a domain DeviceSyncHistory entity to a GORM DeviceSyncHistoryModel.
func fromSyncHistoryDomain(data *entity.DeviceSyncHistory) *model.DeviceSyncHistoryModel {
	if data == nil {
		return nil
	}

	dataTypes := data.DataTypesSynced
	if dataTypes == nil {
		dataTypes = []entity.DataType{}
	}

	return &model.DeviceSyncHistoryModel{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		UserID:          data.UserID,
		SyncType:        string(data.SyncType),
		Status:          string(data.Status),
		DataTypesSynced: toJSONColumn(dataTypes),
		RecordsFetched:  data.RecordsFetched,
		RecordsStored:   data.RecordsStored,
		DurationMs:      data.DurationMs,
		ErrorMessage:    data.ErrorMessage,
		ErrorCode:       data.ErrorCode,
		StartedAt:       data.StartedAt,
		CompletedAt:     data.CompletedAt,
	}
}
