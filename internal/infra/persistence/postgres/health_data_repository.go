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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const healthDataBatchSize = 500

// healthDataRepository implements the repository.HealthDataRepository interface.
type healthDataRepository struct {
	db *gorm.DB
}

// NewHealthDataRepository is the constructor for healthDataRepository.
func NewHealthDataRepository(db *gorm.DB) repository.HealthDataRepository {
	return &healthDataRepository{
		db: db,
	}
}

// UpsertHealthData stores samples, overwriting rows that share the dedup key.
func (repo *healthDataRepository) UpsertHealthData(ctx context.Context, records []*entity.WearableHealthData) (int, error) {
	records = dedupeHealthData(records)
	if len(records) == 0 {
		return 0, nil
	}

	dataModels := make([]*model.WearableHealthDataModel, 0, len(records))
	for _, record := range records {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		dataModels = append(dataModels, fromHealthDataDomain(record))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "device_id"},
				{Name: "data_type"},
				{Name: "recorded_at"},
				{Name: "source_workout_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"value_kind",
				"value_numeric",
				"value_text",
				"value_structured",
				"unit",
				"quality_score",
				"raw_data",
				"synced_at",
			}),
		}).
		CreateInBatches(dataModels, healthDataBatchSize)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert health data")
	}

	return int(result.RowsAffected), nil
}

// healthDataKey mirrors the unique index on wearable_health_data.
type healthDataKey struct {
	deviceID        uuid.UUID
	dataType        entity.DataType
	recordedAt      int64
	sourceWorkoutID string
}

// dedupeHealthData keeps the last record per key, at the position of its first occurrence.
// A single INSERT ... ON CONFLICT may not touch the same row twice.
func dedupeHealthData(records []*entity.WearableHealthData) []*entity.WearableHealthData {
	seen := make(map[healthDataKey]int, len(records))
	out := make([]*entity.WearableHealthData, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		key := healthDataKey{
			deviceID:        record.DeviceID,
			dataType:        record.DataType,
			recordedAt:      record.Timestamp.UnixMicro(),
			sourceWorkoutID: record.SourceWorkoutID,
		}
		if i, ok := seen[key]; ok {
			out[i] = record

			continue
		}
		seen[key] = len(out)
		out = append(out, record)
	}

	return out
}

// FindHealthData returns samples matching query, newest first.
func (repo *healthDataRepository) FindHealthData(
	ctx context.Context,
	query repository.HealthDataQuery,
) ([]*entity.WearableHealthData, error) {
	tx := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ? AND data_type = ?", query.UserID, string(query.DataType))
	if query.Start != nil {
		tx = tx.Where("recorded_at >= ?", *query.Start)
	}
	if query.End != nil {
		tx = tx.Where("recorded_at <= ?", *query.End)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var dataModels []*model.WearableHealthDataModel
	if err := tx.Order("recorded_at DESC").Find(&dataModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find health data")
	}

	records := make([]*entity.WearableHealthData, 0, len(dataModels))
	for _, dataM := range dataModels {
		records = append(records, toHealthDataDomain(dataM))
	}

	return records, nil
}

// DeleteHealthDataByDevice removes all samples of a device.
func (repo *healthDataRepository) DeleteHealthDataByDevice(ctx context.Context, deviceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.WearableHealthDataModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete health data by device")
	}

	return nil
}

// --- Mapper Functions ---

// toHealthDataDomain converts a GORM WearableHealthDataModel to a domain WearableHealthData entity.
func toHealthDataDomain(data *model.WearableHealthDataModel) *entity.WearableHealthData {
	if data == nil {
		return nil
	}

	record := &entity.WearableHealthData{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		Provider:        entity.ProviderID(data.Provider),
		DataType:        entity.DataType(data.DataType),
		Timestamp:       data.RecordedAt,
		Unit:            data.Unit,
		QualityScore:    data.QualityScore,
		SourceWorkoutID: data.SourceWorkoutID,
		RawData:         data.RawData,
		SyncedAt:        data.SyncedAt,
	}

	switch entity.ValueKind(data.ValueKind) {
	case entity.ValueKindNumeric:
		if data.ValueNumeric != nil {
			record.Value = entity.NumericValue(*data.ValueNumeric)
		}
	case entity.ValueKindText:
		if data.ValueText != nil {
			record.Value = entity.TextValue(*data.ValueText)
		}
	case entity.ValueKindStructured:
		record.Value = entity.StructuredValue(mapFromJSON(data.ValueStructured))
	}

	return record
}

// fromHealthDataDomain converts a domain WearableHealthData entity to a GORM WearableHealthDataModel.
func fromHealthDataDomain(data *entity.WearableHealthData) *model.WearableHealthDataModel {
	if data == nil {
		return nil
	}

	dataM := &model.WearableHealthDataModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeviceID:        data.DeviceID,
		Provider:        string(data.Provider),
		DataType:        string(data.DataType),
		RecordedAt:      data.Timestamp,
		SourceWorkoutID: data.SourceWorkoutID,
		ValueKind:       string(data.Value.Kind),
		ValueNumeric:    data.Value.Numeric,
		ValueText:       data.Value.Text,
		Unit:            data.Unit,
		QualityScore:    data.QualityScore,
		SyncedAt:        data.SyncedAt,
	}
	if data.Value.Structured != nil {
		dataM.ValueStructured = toJSONColumn(data.Value.Structured)
	}
	if len(data.RawData) > 0 {
		dataM.RawData = data.RawData
	}

	return dataM
}
