package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthFlowStateModel is the GORM-specific struct for the 'auth_flow_states' table.
// Only the SHA-256 of the state token is stored.
type AuthFlowStateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider    string    `gorm:"type:varchar(50);not null"`
	StateHash   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	RedirectURI string    `gorm:"type:text;not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthFlowStateModel) TableName() string {
	return "auth_flow_states"
}
