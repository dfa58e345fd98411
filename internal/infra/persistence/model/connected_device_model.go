package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConnectedDeviceModel is the GORM-specific struct for the 'connected_devices' table.
type ConnectedDeviceModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_connected_devices_user_provider,priority:1"`
	Provider       string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_connected_devices_user_provider,priority:2"`
	ProviderUserID string         `gorm:"type:varchar(255)"`
	DisplayName    string         `gorm:"type:varchar(255)"`
	DeviceType     string         `gorm:"type:varchar(50)"`
	Status         string         `gorm:"type:varchar(30);not null;index"`
	Scopes         datatypes.JSON `gorm:"type:jsonb"`
	LastSyncAt     *time.Time
	LastError      string         `gorm:"type:text"`
	ErrorCount     int            `gorm:"not null"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	Credential     []byte         `gorm:"type:bytea"`
	TokenExpiresAt *time.Time
	ConnectedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectedDeviceModel) TableName() string {
	return "connected_devices"
}
