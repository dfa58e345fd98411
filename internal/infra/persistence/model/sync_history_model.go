package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeviceSyncHistoryModel is the GORM-specific struct for the 'device_sync_histories' table.
// Rows are only ever inserted.
type DeviceSyncHistoryModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key"`
	DeviceID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_sync_histories_device_started,priority:1"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	SyncType        string         `gorm:"type:varchar(20);not null"`
	Status          string         `gorm:"type:varchar(20);not null"`
	DataTypesSynced datatypes.JSON `gorm:"type:jsonb"`
	RecordsFetched  int            `gorm:"not null"`
	RecordsStored   int            `gorm:"not null"`
	DurationMs      int64          `gorm:"not null"`
	ErrorMessage    string         `gorm:"type:text"`
	ErrorCode       string         `gorm:"type:varchar(100)"`
	StartedAt       time.Time      `gorm:"not null;index:idx_sync_histories_device_started,priority:2,sort:desc"`
	CompletedAt     time.Time      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceSyncHistoryModel) TableName() string {
	return "device_sync_histories"
}
