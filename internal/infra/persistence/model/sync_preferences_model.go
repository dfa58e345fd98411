package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SyncPreferencesModel is the GORM-specific struct for the 'sync_preferences' table.
type SyncPreferencesModel struct {
	DeviceID             uuid.UUID      `gorm:"type:uuid;primary_key"`
	AutoSyncEnabled      bool           `gorm:"not null;index"`
	SyncFrequencyMinutes int            `gorm:"not null"`
	DataTypesEnabled     datatypes.JSON `gorm:"type:jsonb"`
	SyncOnlyWifi         bool           `gorm:"not null"`
	NotifyOnSync         bool           `gorm:"not null"`
	NotifyOnError        bool           `gorm:"not null"`
	BackfillDays         int            `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (SyncPreferencesModel) TableName() string {
	return "sync_preferences"
}
