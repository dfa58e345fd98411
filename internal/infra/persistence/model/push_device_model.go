// Package model holds the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushDeviceModel is the GORM-specific struct for the 'push_devices' table.
// It represents a phone registered for sync notifications.
type PushDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PushDeviceModel) TableName() string {
	return "push_devices"
}
