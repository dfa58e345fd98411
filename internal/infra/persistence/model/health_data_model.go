package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WearableHealthDataModel is the GORM-specific struct for the 'wearable_health_data' table.
// Samples are unique by (device_id, data_type, recorded_at, source_workout_id).
type WearableHealthDataModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_health_data_user_type_time,priority:1"`
	DeviceID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_health_data_dedup,priority:1"`
	Provider        string         `gorm:"type:varchar(50);not null"`
	DataType        string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_health_data_dedup,priority:2;index:idx_health_data_user_type_time,priority:2"`
	RecordedAt      time.Time      `gorm:"not null;uniqueIndex:idx_health_data_dedup,priority:3;index:idx_health_data_user_type_time,priority:3"`
	SourceWorkoutID string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_health_data_dedup,priority:4"`
	ValueKind       string         `gorm:"type:varchar(20);not null"`
	ValueNumeric    *float64
	ValueText       *string        `gorm:"type:text"`
	ValueStructured datatypes.JSON `gorm:"type:jsonb"`
	Unit            string         `gorm:"type:varchar(20)"`
	QualityScore    float64        `gorm:"not null"`
	RawData         datatypes.JSON `gorm:"type:jsonb"`
	SyncedAt        time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WearableHealthDataModel) TableName() string {
	return "wearable_health_data"
}
